package content

var (
	// AboutMe is markdown.
	AboutMe = `I'm a passionate **Data Engineer** with a Master's degree in Computer Engineering
(specializing in Data Science) from Virginia Tech. My expertise spans across modern big data
technologies, cloud platforms, and machine learning techniques, allowing me to architect
scalable data solutions and derive actionable insights from complex datasets.`

	ResumeBlurb = `View or download my complete resume to learn more about my professional experience and skills.`

	HeroCallToAction = "Explore My Work"
)
