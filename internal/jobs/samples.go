// Package jobs serves a small catalog of built-in job postings so callers
// can try the matcher without writing a job description first.
package jobs

// SampleJob is one built-in posting.
type SampleJob struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// Samples returns the built-in postings. Callers get a fresh slice; the
// backing entries are immutable.
func Samples() []SampleJob {
	out := make([]SampleJob, len(sampleJobs))
	copy(out, sampleJobs)
	return out
}

var sampleJobs = []SampleJob{
	{
		Title:   "Senior Software Engineer",
		Company: "TechCorp",
		Description: `
We are seeking a Senior Software Engineer to join our dynamic team.

Requirements:
- 5+ years of software development experience
- Strong proficiency in Python, JavaScript, and SQL
- Experience with React, Node.js, and RESTful APIs
- Knowledge of cloud platforms (AWS/Azure)
- Bachelor's degree in Computer Science or related field
- Experience with agile development methodologies

Responsibilities:
- Design and develop scalable web applications
- Collaborate with cross-functional teams
- Mentor junior developers
- Participate in code reviews and technical discussions

Preferred:
- Experience with Docker and Kubernetes
- Knowledge of machine learning frameworks
- Experience with microservices architecture
`,
	},
	{
		Title:   "Data Scientist",
		Company: "DataTech Inc",
		Description: `
Join our data science team to drive insights and build predictive models.

Requirements:
- Master's degree in Data Science, Statistics, or related field
- 3+ years of experience in data analysis and machine learning
- Proficiency in Python, R, and SQL
- Experience with pandas, numpy, scikit-learn, TensorFlow
- Strong statistical analysis skills
- Experience with data visualization tools (Tableau, Power BI)

Responsibilities:
- Develop and deploy machine learning models
- Analyze large datasets to extract actionable insights
- Create data visualizations and reports
- Collaborate with business stakeholders

Preferred:
- PhD in quantitative field
- Experience with big data technologies (Spark, Hadoop)
- Knowledge of deep learning frameworks
`,
	},
	{
		Title:   "Full Stack Developer",
		Company: "StartupXYZ",
		Description: `
Looking for a versatile Full Stack Developer to build amazing products.

Requirements:
- 3+ years of full-stack development experience
- Frontend: React, Vue.js, or Angular
- Backend: Node.js, Express, or Django
- Database experience: MongoDB, PostgreSQL
- Experience with Git version control
- Bachelor's degree preferred

Responsibilities:
- Build responsive web applications
- Design and implement APIs
- Work with designers and product managers
- Optimize application performance

Preferred:
- Experience with TypeScript
- Knowledge of DevOps practices
- Mobile development experience
- Experience with GraphQL
`,
	},
	{
		Title:   "DevOps Engineer",
		Company: "CloudSystems",
		Description: `
Seeking a DevOps Engineer to manage our cloud infrastructure and CI/CD pipelines.

Requirements:
- 4+ years of DevOps/Infrastructure experience
- Strong experience with AWS or Azure
- Proficiency in Docker and Kubernetes
- Experience with Infrastructure as Code (Terraform, CloudFormation)
- Knowledge of CI/CD tools (Jenkins, GitLab CI)
- Scripting skills in Python or Bash

Responsibilities:
- Manage cloud infrastructure and deployments
- Build and maintain CI/CD pipelines
- Monitor system performance and reliability
- Implement security best practices

Preferred:
- Certifications in AWS/Azure
- Experience with monitoring tools (Prometheus, Grafana)
- Knowledge of service mesh technologies
`,
	},
	{
		Title:   "Product Manager",
		Company: "InnovateTech",
		Description: `
We're looking for a Product Manager to drive product strategy and execution.

Requirements:
- 5+ years of product management experience
- MBA or equivalent experience
- Strong analytical and problem-solving skills
- Experience with agile development methodologies
- Excellent communication and leadership skills
- Data-driven decision making

Responsibilities:
- Define product roadmap and strategy
- Work with engineering and design teams
- Conduct market research and competitive analysis
- Manage product launches and go-to-market strategy

Preferred:
- Technical background in software development
- Experience with B2B SaaS products
- Knowledge of SQL and data analysis tools
`,
	},
}
