package content

var (
	AboutMe = `I am a master's student at [KAIST ICLab](https://ic.kaist.ac.kr/, color=blue), advised by Prof. Uichin Lee.
	My research spans various areas of digital health, from modeling human states using multimodal data to designing evaluative tools.
	While the specific topics differ, they all share a common goal: leveraging everyday data and technology to support better health outcomes.
	Ultimately, I aim to help build systems that make digital health support more effective, interpretable, and adaptable across different contexts.`

	Footer = `Copyright © 2025 Obasi Oluwatoyosi Yetunde. All rights reserved. | Last updated on September 11, 2025.`
)
