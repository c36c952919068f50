package skill

// Category is a closed set; values outside it are rejected before anything
// touches the store.
type Category string

const (
	CategoryProgramming       Category = "programming"
	CategoryDesign            Category = "design"
	CategoryLanguages         Category = "languages"
	CategoryDatabase          Category = "database"
	CategoryFrameworks        Category = "frameworks"
	CategoryTools             Category = "tools"
	CategorySoftSkills        Category = "soft_skills"
	CategoryWeb               Category = "web"
	CategoryMobile            Category = "mobile"
	CategoryCloud             Category = "cloud"
	CategoryTesting           Category = "testing"
	CategoryAnalytics         Category = "analytics"
	CategoryMachineLearning   Category = "machine_learning"
	CategorySecurity          Category = "security"
	CategoryNetworking        Category = "networking"
	CategoryGraphics          Category = "graphics"
	CategoryAudioVideo        Category = "audio_video"
	CategoryProjectManagement Category = "project_management"
	CategoryCommunication     Category = "communication"
	CategoryLeadership        Category = "leadership"
	CategoryEntrepreneurship  Category = "entrepreneurship"
	CategoryDataScience       Category = "data_science"
	CategoryAutomation        Category = "automation"
	CategoryDevOps            Category = "devops"
	CategoryBlockchain        Category = "blockchain"
	CategoryRobotics          Category = "robotics"
)

// Categories lists every valid category, in the order the site shows them.
var Categories = []Category{
	CategoryProgramming,
	CategoryDesign,
	CategoryLanguages,
	CategoryDatabase,
	CategoryFrameworks,
	CategoryTools,
	CategorySoftSkills,
	CategoryWeb,
	CategoryMobile,
	CategoryCloud,
	CategoryTesting,
	CategoryAnalytics,
	CategoryMachineLearning,
	CategorySecurity,
	CategoryNetworking,
	CategoryGraphics,
	CategoryAudioVideo,
	CategoryProjectManagement,
	CategoryCommunication,
	CategoryLeadership,
	CategoryEntrepreneurship,
	CategoryDataScience,
	CategoryAutomation,
	CategoryDevOps,
	CategoryBlockchain,
	CategoryRobotics,
}

var categorySet = func() map[Category]struct{} {
	set := make(map[Category]struct{}, len(Categories))
	for _, c := range Categories {
		set[c] = struct{}{}
	}
	return set
}()

func (c Category) Valid() bool {
	_, ok := categorySet[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}
