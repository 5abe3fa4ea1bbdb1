package content

var profile = Profile{
	Name:     "Obasi Oluwatoyosi Yetunde",
	Title:    "Digital Health and HCI Researcher",
	Email:    "obasi@dgist.ac.kr",
	Location: "Daegu, Republic of Korea",
	Bio:      "Researching signals (physiological, wearable, speech) for digital health and mental well-being | M.S. student @ KAIST ICLab",
	Image:    "/images/photos/profile.jpg",
	SocialLinks: SocialLinks{
		GitHub:   "https://github.com/gn0219",
		LinkedIn: "https://www.linkedin.com/in/gyuna/",
		Scholar:  "https://scholar.google.com/citations?user=YOUR_ID",
	},
	Education: []Education{
		{
			Degree:         "M.S.",
			Department:     "Graduate School of Data Science",
			DepartmentURL:  "https://gsds.kaist.ac.kr/",
			Institution:    "DGIST",
			InstitutionURL: "https://www.dgist.ac.kr/",
			Year:           "2024.02 - Present",
		},
		{
			Degree:         "B.Sc.",
			Department:     "Physics",
			DepartmentURL:  "https://ie.unist.ac.kr/",
			Institution:    "University of Ilorin (UNILORIN)",
			InstitutionURL: "https://www.unilorin.edu.ng/",
			Year:           "2016.01 - 2021.12",
		},
	},
	Skills: []string{},
	About:  AboutMe,
	InterestGroups: []InterestGroup{
		{Category: "AI/ML", Items: []string{
			"AI Healthcare",
			"Digital Phenotyping",
			"Multimodal Data Analysis",
			"LLM Context Engineering",
		}},
		{Category: "HCI", Items: []string{
			"Visual Analytics",
			"Interactive Systems",
		}},
	},
	RelatedWebsite: Website{Title: "ICLab in KAIST", URL: "https://kaist-iclab.github.io"},
	Lab: Lab{
		Name:     "KAIST ICLab",
		FullName: "IBOM Laboratory",
		URL:      "https://ic.kaist.ac.kr/",
		Advisor:  "Prof. Uichin Lee",
	},
	CVURL: "/cv.pdf",
}

var news = []NewsItem{
	{
		Date:        "2025-12",
		Title:       "Certificate of Appreciation from DGIST",
		Description: "I was honored to receive a Certificate of Appreciation from [DGIST](https://www.dgist.ac.kr/, color=university) for my contributions to Promotion and media team activities 🎉",
	},
	{
		Date:        "2025-10",
		Title:       "Researcher",
		Description: "I started my position as a Researcher at DGIST🎉",
	},
	{
		Date:        "2025-08",
		Title:       "Conference on Electronics, Semiconductor, and AI South Korea (Poster)",
		Description: "Attended and presented my work at the Conference on Electronics, Semiconductor, and AI 2025 in Gangneung South Korea",
	},
	{
		Date:        "2025-08",
		Title:       "Graduated from DGIST",
		Description: "I completed my M.Sc. in Artificial Intelligence at DGIST 🎓",
	},
	{
		Date:        "2024-12",
		Title:       "AI Summit 2024 Seoul",
		Description: "I attended the AI Summit 2024 Seoul as a delegate representing DGIST",
	},
	{
		Date:        "2024-06",
		Title:       "IEIE 2024 Summer Conference South Korea (Oral)",
		Description: "Attended and presented my work at the [IEIE 2024 Summer Conference](https://www.theieie.org/) in Jeju South Korea",
	},
	{
		Date:        "2024-04",
		Title:       "KMSE society south korea (Poster).",
		Description: " My work was presented at the KMSE society 2024 conference",
	},
}

var honors = []Honor{
	{Year: "2025", Title: "Certificate of Appreciation", Organization: "DGIST"},
	{Year: "2024", Title: "Oral Presentation, IEIE Summer Conference"},
	{Year: "2024", Title: "Global Korea Scholarship", Organization: "NIIED"},
}

var publications = []Publication{}

var projects = Projects{
	Current: []Project{
		{
			Title:       "Learning-Based VR Tracking with Sensor Fusion",
			Description: "Developing learning-based models to improve VR controller positional accuracy by fusing VR tracking data with external IMU signals. The project leverages time-series modeling using LSTM and Transformer architectures, evaluated on real-world Unity data, synthetic [Isaac Sim](https://developer.nvidia.com/isaac/sim) data, and human-subject experiments.",
			StartDate:   "2023-02",
			EndDate:     "2025-08",
			Role:        "Research Lead",
			Technologies: []string{
				"PyTorch", "Transformer", "LSTM", "Sensor Fusion",
				"Unity", "Isaac Sim", "Time-Series Modeling",
			},
			Status: StatusCompleted,
		},
		{
			Title:       "Custom VR–IMU Housing for High-Precision Motion Experiments",
			Description: "Designed and fabricated a custom mechanical housing to rigidly mount a VR controller and an external IMU sensor onto a motorized linear stage. The design ensures repeatable sensor alignment, mechanical stability, and minimal rotational offset for precision motion tracking experiments.",
			StartDate:   "2024-09",
			EndDate:     "2024-11",
			Role:        "Mechanical Design and System Integration",
			Technologies: []string{
				"SolidWorks", "3D Printing", "VR Hardware", "IMU Sensors", "Mechanical Design",
			},
			Status: StatusCompleted,
		},
		{
			Title:       "Synthetic Trajectory Generation for VR Sensor Fusion",
			Description: "Developed a synthetic data generation pipeline using Isaac Sim to produce controlled motion trajectories with synchronized position and acceleration signals. The dataset was used for pre-training and robustness evaluation of learning-based VR tracking models.",
			StartDate:   "2024-12",
			EndDate:     "2025-12",
			Role:        "Simulation and Data Engineering",
			Technologies: []string{
				"Isaac Sim", "Python", "Simulation", "Synthetic Data", "Time-Series Analysis",
			},
			Status: StatusCompleted,
		},
		{
			Title:       "Time-Series Learning for Real and Synthetic VR Motion Data",
			Description: "Trained and evaluated LSTM and Transformer models on time-series motion data collected from Unity-based real-world experiments and synthetic trajectories generated in Isaac Sim. The project focused on improving robustness and generalization across simulation and real-world environments.",
			StartDate:   "2023-02",
			EndDate:     "2025-12",
			Role:        "Model Training and Analysis",
			Technologies: []string{
				"PyTorch", "LSTM", "Transformer", "Unity", "Isaac Sim", "Time-Series Data",
			},
			Status: StatusCompleted,
		},
		{
			Title:       "Korean–English Neural Machine Translation using Transformers",
			Description: "Implemented a Transformer-based neural machine translation model for Korean-to-English translation as part of a graduate-level deep learning course. The project explored attention mechanisms, tokenization strategies, and sequence-to-sequence learning.",
			StartDate:   "2023-08",
			EndDate:     "2024-12",
			Role:        "Model Implementation and Analysis",
			Technologies: []string{
				"Transformer", "PyTorch", "Natural Language Processing", "Sequence-to-Sequence Learning",
			},
			Status: StatusCompleted,
		},
		{
			Title:        "Enhancing Signal Quality Indices for Real-World PPG Signals",
			Description:  "Improving the reliability of physiological data through real-world PPG signal quality assessment.",
			StartDate:    "2025-03",
			Role:         "Project Lead",
			Technologies: []string{"Python", "PyTorch", "Signal Processing"},
			Status:       StatusOngoing,
		},
	},
	Past: []Project{},
}

var experience = []ExperienceGroup{
	{
		Role: "Teaching & Academic Support",
		Entries: []ExperienceEntry{
			{
				Year:        "January 2025 - December 2025",
				Title:       "DGIST International student association (DISA) PR & Media Team",
				Institution: "[DGIST](https://www.dgist.ac.kr/)",
			},
			{
				Year:        "June 2025 - August 2025",
				Title:       "Mentored intern students for research projects in AI",
				Institution: "DGIST",
			},
			{
				Year:        "January 2024 - December 2024",
				Title:       "DGIST International student association (DISA) PR & Media Team",
				Institution: "DGIST",
			},
			{
				Year:        "August 2024 - December 2024",
				Title:       "Teaching Assistant(TA) for physics course",
				Institution: "DGIST",
			},
			{
				Year:        "Nov 2022 – Oct 2023",
				Title:       "National Youth Service Corps (NYSC); Physics Tutor",
				Institution: "BenGee Model College, Agege, Lagos State, Nigeria",
			},
		},
	},
	{
		Role: "Mentorship & Outreach",
		Entries: []ExperienceEntry{
			{
				Year:        "Nov 2022 – Oct 2023",
				Title:       "National Youth Service Corps (NYSC); Physics Tutor",
				Institution: "BenGee Model College, Agege, Lagos State, Nigeria",
			},
			{
				Year:        "Nov 2022 – April 2023",
				Title:       "Operation Feed; Volunteer Mentor",
				Institution: "Inspired Smiles Foundation, Lagos, Nigeria",
			},
		},
	},
}

var services = []ServiceGroup{}

var photos = []Photo{
	{Src: "/images/photos/yet4.jpg", Comment: " 2024 | AI Summit 2024 Seoul 📸"},
	{Src: "/images/photos/yet5.jpg", Comment: "2024 | Christmas 2025 DGIST🎄"},
	{Src: "/images/photos/yet3.jpg", Comment: "2025 | Master's defense 2025 🍂"},
	{Src: "/images/photos/yet2.jpg", Comment: "2025 | IEIE Summer Conference 2025 🌊"},
	{Src: "/images/photos/yet1.jpg", Comment: "2025 | Trip to Yeosu"},
	{Src: "/images/photos/profile_yetty.jpeg", Comment: "2025 | Graduation Ceremony 🍂"},
}
