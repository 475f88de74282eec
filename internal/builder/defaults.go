package builder

// PaletteEntry describes one draggable palette item: a component type with the
// content a freshly added component of that type starts with.
type PaletteEntry struct {
	Type        Type   `json:"type"`
	Icon        string `json:"icon"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Palette returns the component palette in display order.
func Palette() []PaletteEntry {
	return []PaletteEntry{
		{Type: TypeHero, Icon: "user-circle", Label: "Title", Description: "Name, Title, and Bio"},
		{Type: TypeHeader, Icon: "heading", Label: "Header", Description: "Section heading"},
		{Type: TypeText, Icon: "type", Label: "Text Block", Description: "Paragraph or rich text"},
		{Type: TypeImage, Icon: "image", Label: "Image", Description: "Single image with caption"},
		{Type: TypeAbout, Icon: "user", Label: "About Section", Description: "Introduction and bio"},
		{Type: TypeProject, Icon: "folder-git-2", Label: "Project", Description: "Single project showcase"},
		{Type: TypeCertification, Icon: "award", Label: "Certification", Description: "Certificate or credential"},
		{Type: TypeExperience, Icon: "briefcase", Label: "Work Experience", Description: "Job or internship"},
		{Type: TypeEducation, Icon: "graduation-cap", Label: "Education", Description: "School or degree"},
		{Type: TypeDivider, Icon: "minus", Label: "Divider Line", Description: "Section separator"},
	}
}

// DefaultContent returns a fresh starting content value for a component of
// type t, or nil for an unknown type. Each call builds a new value so added
// components never share slices.
func DefaultContent(t Type) Content {
	switch t {
	case TypeHero:
		return HeroContent{
			Name:  "Your Name",
			Title: "Your Title",
			Bio:   "Write a brief bio about yourself...",
		}
	case TypeHeader:
		return HeaderContent{Text: "New Section"}
	case TypeText:
		return TextContent{Text: "Enter your text here..."}
	case TypeImage:
		return ImageContent{Width: "full", Alignment: "center"}
	case TypeAbout:
		return AboutContent{Heading: "About Me", Text: "Write about yourself..."}
	case TypeProject:
		return ProjectContent{
			Title:            "Project Title",
			Description:      "Project description",
			Tags:             []string{},
			AdditionalImages: []string{},
		}
	case TypeCertification:
		return CertificationContent{
			Name:   "Certification Name",
			Issuer: "Issuing Organization",
		}
	case TypeExperience:
		return ExperienceContent{
			Company:     "Company Name",
			Position:    "Position",
			Description: "Describe your role and achievements...",
		}
	case TypeEducation:
		return EducationContent{
			School:      "School Name",
			Degree:      "Bachelor of Science in Computer Science",
			Description: "Describe your studies and achievements...",
		}
	case TypeDivider:
		return DividerContent{Style: "solid", Thickness: "medium", Color: "#d1d5db"}
	default:
		return nil
	}
}

// Templates lists the portfolio templates with built-in starting documents.
func Templates() []string {
	return []string{"minimal", "modern", "creative"}
}

// TemplateComponents returns the starting component set for a template, or an
// empty list for an unknown template name.
func TemplateComponents(template string) []Component {
	switch template {
	case "minimal":
		return []Component{
			{ID: "1", Type: TypeHero, Content: HeroContent{
				Name:  "Alex Morgan",
				Title: "Full Stack Developer",
				Bio:   "Building elegant solutions to complex problems. Specialized in React, Node.js, and cloud technologies.",
			}},
			{ID: "2", Type: TypeAbout, Content: AboutContent{
				Heading: "About Me",
				Text:    "I'm a passionate developer with 5+ years of experience in web development. I love creating user-friendly applications that solve real-world problems.",
			}},
			{ID: "3", Type: TypeHeader, Content: HeaderContent{Text: "Projects"}},
			{ID: "4", Type: TypeProject, Content: ProjectContent{
				Title:       "E-Commerce Platform",
				Description: "A full-featured e-commerce platform built with React and Node.js. Features include real-time inventory management, payment processing, and analytics dashboard.",
				Tags:        []string{"React", "Node.js", "MongoDB", "Stripe"},
				Image:       "https://images.unsplash.com/photo-1660810731526-0720827cbd38?w=800",
			}},
			{ID: "5", Type: TypeProject, Content: ProjectContent{
				Title:       "Task Management App",
				Description: "A collaborative task management application with real-time updates, team collaboration features, and integrations with popular productivity tools.",
				Tags:        []string{"Vue.js", "Express", "Socket.io", "Redis"},
				Image:       "https://images.unsplash.com/photo-1484480974693-6ca0a78fb36b?w=800",
			}},
			{ID: "6", Type: TypeHeader, Content: HeaderContent{Text: "Experience"}},
			{ID: "7", Type: TypeExperience, Content: ExperienceContent{
				Company:     "Tech Solutions Inc.",
				Position:    "Senior Full Stack Developer",
				StartDate:   "06/2021",
				Current:     true,
				Description: "Lead development of microservices architecture. Mentor junior developers and conduct code reviews. Implemented CI/CD pipelines and improved deployment processes.",
			}},
			{ID: "8", Type: TypeExperience, Content: ExperienceContent{
				Company:     "StartUp Ventures",
				Position:    "Full Stack Developer",
				StartDate:   "03/2019",
				EndDate:     "05/2021",
				Description: "Developed and maintained multiple client-facing web applications. Collaborated with designers and product managers to deliver high-quality features on tight deadlines.",
			}},
		}
	case "modern":
		return []Component{
			{ID: "1", Type: TypeHero, Content: HeroContent{
				Name:  "Jordan Lee",
				Title: "Creative Developer & Designer",
				Bio:   "Crafting beautiful digital experiences at the intersection of design and technology.",
			}},
			{ID: "2", Type: TypeHeader, Content: HeaderContent{Text: "Featured Projects"}},
			{ID: "3", Type: TypeProject, Content: ProjectContent{
				Title:       "SaaS Analytics Dashboard",
				Description: "A comprehensive analytics platform for SaaS companies with real-time metrics, customizable reports, and data visualization. Handles millions of events per day with sub-second query performance.",
				Tags:        []string{"React", "Next.js", "Tailwind CSS", "PostgreSQL"},
				Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800",
			}},
			{ID: "4", Type: TypeProject, Content: ProjectContent{
				Title:       "Brand Identity Platform",
				Description: "A comprehensive design system and brand management platform for enterprise clients. Streamlines the design-to-development workflow with automated asset generation.",
				Tags:        []string{"TypeScript", "React", "Figma API", "AWS"},
				Image:       "https://images.unsplash.com/photo-1558655146-9f40138edfeb?w=800",
			}},
			{ID: "5", Type: TypeHeader, Content: HeaderContent{Text: "Experience"}},
			{ID: "6", Type: TypeExperience, Content: ExperienceContent{
				Company:     "Creative Digital Studio",
				Position:    "Lead Creative Developer",
				StartDate:   "01/2022",
				Current:     true,
				Description: "Leading a team of developers and designers to create award-winning digital experiences for Fortune 500 clients. Focus on innovative web technologies and user-centered design.",
			}},
			{ID: "7", Type: TypeExperience, Content: ExperienceContent{
				Company:     "Design Lab Agency",
				Position:    "Front-End Developer",
				StartDate:   "02/2020",
				EndDate:     "12/2021",
				Description: "Built responsive websites and web applications for various clients. Collaborated closely with design team to ensure pixel-perfect implementations and smooth animations.",
			}},
			{ID: "8", Type: TypeAbout, Content: AboutContent{
				Heading: "About Me",
				Text:    "I'm a creative developer who loves bridging the gap between design and development. With a background in both visual design and software engineering, I create digital products that are both beautiful and functional.",
			}},
		}
	case "creative":
		return []Component{
			{ID: "1", Type: TypeHero, Content: HeroContent{
				Name:  "Sam Rivers",
				Title: "Digital Artist & Developer",
				Bio:   "Creating unique digital experiences that blur the line between art and code.",
			}},
			{ID: "2", Type: TypeHeader, Content: HeaderContent{Text: "Portfolio"}},
			{ID: "3", Type: TypeProject, Content: ProjectContent{
				Title:       "Interactive Art Installation",
				Description: "A web-based interactive art piece that responds to user input in real-time. Featured in multiple digital art exhibitions and garnered over 50,000 unique interactions.",
				Tags:        []string{"Three.js", "WebGL", "Canvas API", "GLSL"},
				Image:       "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=800",
			}},
			{ID: "4", Type: TypeProject, Content: ProjectContent{
				Title:       "Generative Art Platform",
				Description: "An algorithmic art platform that creates unique digital artwork using AI and procedural generation. Users can mint their creations as NFTs and explore endless creative possibilities.",
				Tags:        []string{"p5.js", "TensorFlow.js", "Web3", "Ethereum"},
				Image:       "https://images.unsplash.com/photo-1618005198919-d3d4b5a92ead?w=800",
			}},
			{ID: "5", Type: TypeHeader, Content: HeaderContent{Text: "Experience"}},
			{ID: "6", Type: TypeExperience, Content: ExperienceContent{
				Company:     "Immersive Art Collective",
				Position:    "Creative Technologist",
				StartDate:   "09/2021",
				Current:     true,
				Description: "Creating cutting-edge digital art installations and interactive experiences. Combining creative coding, generative design, and emerging technologies to push the boundaries of digital art.",
			}},
			{ID: "7", Type: TypeExperience, Content: ExperienceContent{
				Company:     "Digital Studio X",
				Position:    "Interactive Developer",
				StartDate:   "06/2019",
				EndDate:     "08/2021",
				Description: "Developed interactive websites and digital experiences for brands and artists. Specialized in creative coding, WebGL, and experimental user interfaces.",
			}},
		}
	default:
		return []Component{}
	}
}
