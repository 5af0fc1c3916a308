package patterns

// SkillCategories maps a category name to its known skill vocabulary. The
// fallback extractor tests raw text against this vocabulary; CategorizeSkill
// reverses the lookup.
var SkillCategories = map[string][]string{
	"programmingLanguages": {
		"JavaScript", "TypeScript", "Python", "Java", "C#", "C++", "C", "PHP", "Ruby", "Go", "Rust",
		"Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl", "Lua", "Dart", "Elixir", "Haskell",
		"Clojure", "F#", "VB.NET", "Objective-C", "Assembly",
	},
	"webTechnologies": {
		"HTML", "CSS", "React", "Angular", "Vue.js", "Svelte", "Next.js", "Nuxt.js", "Express.js",
		"Node.js", "Django", "Flask", "FastAPI", "Spring", "ASP.NET", "Laravel", "Symfony", "Rails",
		"Phoenix", "jQuery", "Bootstrap", "Tailwind CSS", "Sass", "Less", "Webpack", "Vite",
	},
	"databases": {
		"MySQL", "PostgreSQL", "MongoDB", "SQLite", "Redis", "Elasticsearch", "Cassandra",
		"DynamoDB", "CouchDB", "Neo4j", "InfluxDB", "Oracle", "SQL Server", "MariaDB", "Firebase",
	},
	"cloudPlatforms": {
		"AWS", "Azure", "Google Cloud", "GCP", "DigitalOcean", "Heroku", "Vercel", "Netlify",
		"Cloudflare", "Linode",
	},
	"devOps": {
		"Docker", "Kubernetes", "Jenkins", "GitLab CI", "GitHub Actions", "Travis CI", "CircleCI",
		"Ansible", "Terraform", "Vagrant", "Chef", "Puppet", "Nginx", "Apache", "Linux", "Ubuntu",
		"CentOS", "Windows Server",
	},
	"tools": {
		"Git", "GitHub", "GitLab", "Bitbucket", "VS Code", "IntelliJ", "Eclipse", "Vim", "Figma",
		"Sketch", "Adobe XD", "Photoshop", "Illustrator", "InDesign", "Jira", "Confluence", "Slack",
		"Notion", "Trello", "Asana", "Excel", "PowerPoint", "Word", "Tableau", "Power BI",
	},
	"dataScience": {
		"Pandas", "NumPy", "Scikit-learn", "TensorFlow", "PyTorch", "Keras", "Jupyter", "D3.js",
		"Matplotlib", "Seaborn", "Plotly", "Apache Spark", "Hadoop", "Apache Kafka", "Apache Airflow",
	},
	"mobile": {
		"React Native", "Flutter", "iOS", "Android", "Xamarin", "Ionic", "Cordova",
	},
}

// skillCategoryOrder fixes the iteration order over SkillCategories for
// matching and flattening, keeping results stable across runs.
var skillCategoryOrder = []string{
	"programmingLanguages", "webTechnologies", "databases", "cloudPlatforms",
	"devOps", "tools", "dataScience", "mobile",
}

// CommonSkills flattens SkillCategories into the membership list the fallback
// extractor scans for. Order is stable within a category.
func CommonSkills() []string {
	var out []string
	seen := make(map[string]bool)
	for _, cat := range skillCategoryOrder {
		for _, s := range SkillCategories[cat] {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// CommonLanguages is the spoken-language vocabulary for fallback extraction.
var CommonLanguages = []string{
	"English", "Spanish", "French", "German", "Italian", "Portuguese", "Chinese",
	"Japanese", "Korean", "Arabic", "Russian", "Hindi", "Dutch", "Swedish",
}

// jobTitleCanonicalOrder fixes the matching order over JobTitleMapping so
// titles whose variations overlap across canonicals resolve the same way on
// every run.
var jobTitleCanonicalOrder = []string{
	"Senior Software Engineer", "Software Engineer", "Frontend Developer",
	"Backend Developer", "Full Stack Developer", "Data Scientist",
	"Product Manager", "DevOps Engineer", "QA Engineer", "UI/UX Designer",
}

// JobTitleMapping maps a canonical job title to the variations that normalize to it.
var JobTitleMapping = map[string][]string{
	"Software Engineer":        {"Software Engineer", "SWE", "Software Developer", "Developer", "Programmer", "Software Programmer"},
	"Senior Software Engineer": {"Senior Software Engineer", "Senior SWE", "Senior Developer", "Senior Software Developer", "Sr. Software Engineer", "Sr SWE"},
	"Frontend Developer":       {"Frontend Developer", "Front-end Developer", "Front End Developer", "UI Developer", "Web Developer"},
	"Backend Developer":        {"Backend Developer", "Back-end Developer", "Back End Developer", "Server Developer", "API Developer"},
	"Full Stack Developer":     {"Full Stack Developer", "Fullstack Developer", "Full-stack Developer", "MERN Developer", "MEAN Developer"},
	"Data Scientist":           {"Data Scientist", "Data Analyst", "Machine Learning Engineer", "ML Engineer", "AI Engineer"},
	"Product Manager":          {"Product Manager", "PM", "Senior Product Manager", "Sr. Product Manager", "Product Owner", "PO"},
	"DevOps Engineer":          {"DevOps Engineer", "Site Reliability Engineer", "SRE", "Infrastructure Engineer", "Platform Engineer"},
	"QA Engineer":              {"QA Engineer", "Quality Assurance Engineer", "Test Engineer", "SDET", "Automation Engineer"},
	"UI/UX Designer":           {"UI/UX Designer", "UX Designer", "UI Designer", "Product Designer", "Visual Designer", "Interaction Designer"},
}

// CompanyNormalizations maps well-known legal names to their short forms.
var CompanyNormalizations = map[string]string{
	"Google LLC":            "Google",
	"Apple Inc.":            "Apple",
	"Microsoft Corporation": "Microsoft",
	"Amazon.com, Inc.":      "Amazon",
	"Meta Platforms, Inc.":  "Meta",
	"Tesla, Inc.":           "Tesla",
	"Netflix, Inc.":         "Netflix",
	"Adobe Inc.":            "Adobe",
	"Salesforce, Inc.":      "Salesforce",
}

// DegreeKeywords trigger education extraction in the rule-based path.
var DegreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "degree", "diploma", "certificate",
	"bs", "ba", "ms", "ma", "mba",
}

// ProjectKeywords trigger project line capture in the rule-based path.
var ProjectKeywords = []string{"project", "developed", "built", "created", "designed"}

// CertificationKeywords trigger certification line capture in the rule-based path.
var CertificationKeywords = []string{"certified", "certification", "certificate", "license", "credential"}
