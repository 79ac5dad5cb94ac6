package scan

// CategoryInfo describes a top-level library directory.
type CategoryInfo struct {
	Name            string
	DDC             string
	DefaultSubjects []string
}

// categoryInfo maps top-level directory names to their classification.
// Directories not listed here are ignored by the scanner.
var categoryInfo = map[string]CategoryInfo{
	"000_Computer_Science": {
		Name:            "Computer Science & Information",
		DDC:             "000",
		DefaultSubjects: []string{"Computer Science", "Technology"},
	},
	"100_Philosophy": {
		Name:            "Philosophy",
		DDC:             "100",
		DefaultSubjects: []string{"Philosophy"},
	},
	"200_Religion": {
		Name:            "Religion",
		DDC:             "200",
		DefaultSubjects: []string{"Religion", "Theology"},
	},
	"400_Language": {
		Name:            "Language",
		DDC:             "400",
		DefaultSubjects: []string{"Language", "Classical Languages"},
	},
	"500_Science": {
		Name:            "Natural Sciences & Mathematics",
		DDC:             "500",
		DefaultSubjects: []string{"Science"},
	},
	"600_Technology": {
		Name:            "Technology & Applied Sciences",
		DDC:             "600",
		DefaultSubjects: []string{"Technology", "Applied Sciences"},
	},
	"700_Arts": {
		Name:            "Arts",
		DDC:             "700",
		DefaultSubjects: []string{"Arts"},
	},
	"780_Music": {
		Name:            "Music",
		DDC:             "780",
		DefaultSubjects: []string{"Music"},
	},
	"790_Recreation": {
		Name:            "Recreation & Sports",
		DDC:             "790",
		DefaultSubjects: []string{"Recreation", "Sports"},
	},
	"Personal": {
		Name:            "Personal",
		DefaultSubjects: []string{"Personal"},
	},
	"My_Research": {
		Name:            "My Research",
		DefaultSubjects: []string{"Research", "Academic Work"},
	},
}

// subcategory refines the classification below a top-level category.
type subcategory struct {
	DDC      string
	Subjects []string
}

// ddcSubcategories maps subdirectory names to more specific DDC numbers.
var ddcSubcategories = map[string]subcategory{
	"005_Programming":             {DDC: "005", Subjects: []string{"Programming", "Software Development"}},
	"006_Artificial_Intelligence": {DDC: "006.3", Subjects: []string{"Artificial Intelligence", "Machine Learning", "AI"}},
	"220_Scripture":               {DDC: "220", Subjects: []string{"Scripture", "Bible"}},
	"264_Liturgy":                 {DDC: "264", Subjects: []string{"Liturgy", "Worship"}},
	"270_Patristics":              {DDC: "270", Subjects: []string{"Patristics", "Church Fathers", "Church History"}},
	"470_Latin":                   {DDC: "470", Subjects: []string{"Latin", "Classical Latin"}},
	"480_Greek":                   {DDC: "480", Subjects: []string{"Greek", "Ancient Greek", "Classical Greek"}},
	"510_Mathematics":             {DDC: "510", Subjects: []string{"Mathematics", "Math"}},
	"530_Physics":                 {DDC: "530", Subjects: []string{"Physics"}},
	"570_Biology":                 {DDC: "570", Subjects: []string{"Biology", "Life Sciences"}},
	"610_Medicine":                {DDC: "610", Subjects: []string{"Medicine", "Health"}},
	"630_Agriculture_Homesteading": {DDC: "630", Subjects: []string{"Agriculture", "Homesteading", "Farming"}},
	"640_Home_Economics":           {DDC: "640", Subjects: []string{"Home Economics", "Self-Sufficiency", "DIY"}},
	"740_Drawing":                  {DDC: "740", Subjects: []string{"Drawing", "Visual Arts"}},
	"781.65_Jazz":                  {DDC: "781.65", Subjects: []string{"Jazz", "Jazz Music"}},
	"782_Vocal_Music":              {DDC: "782", Subjects: []string{"Vocal Music", "Choral Music"}},
	"784_Orchestral":               {DDC: "784", Subjects: []string{"Orchestral Music", "Orchestra"}},
	"787_Stringed_Instruments":     {DDC: "787", Subjects: []string{"Stringed Instruments"}},
	"796_Athletics":                {DDC: "796", Subjects: []string{"Athletics", "Sports", "Physical Training"}},
}

// namedSubdirSubjects adds subjects for well-known subdirectories that
// carry no DDC number of their own.
var namedSubdirSubjects = map[string][]string{
	"Byzantine_Liturgy": {"Byzantine Liturgy"},
	"ByzantineChant":    {"Byzantine Chant", "Chant"},
	"Chant":             {"Byzantine Chant", "Chant"},
	"VocalScores":       {"Vocal Scores"},
	"Guitar":            {"Guitar"},
	"Ukulele":           {"Ukulele"},
	"Strength_Training": {"Strength Training", "Powerlifting", "Weight Training"},
	"Survival_Skills":   {"Survival", "Bushcraft", "Outdoor Skills"},
}

// documentExtensions are the file types that become catalog entries.
var documentExtensions = map[string]bool{
	".pdf":  true,
	".epub": true,
	".md":   true,
	".html": true,
	".txt":  true,
}
