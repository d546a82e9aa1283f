// Package subjects is the static catalog of subjects and their topics.
package subjects

type Subject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

var Catalog = []Subject{
	{"Calculus", "Mathematical analysis involving limits, derivatives, and integrals", "📐", "#007bff"},
	{"Programming", "Computer programming concepts and languages", "💻", "#28a745"},
	{"Physics", "Physical sciences covering mechanics, thermodynamics, and more", "⚛️", "#ffc107"},
	{"Chemistry", "Chemical reactions, molecular structure, and laboratory techniques", "🧪", "#dc3545"},
	{"Statistics", "Data analysis, probability, and statistical inference", "📊", "#6f42c1"},
}

var topics = map[string][]string{
	"Calculus": {
		"Limits and Continuity",
		"Derivatives and Differentiation",
		"Applications of Derivatives",
		"Integration Techniques",
		"Definite Integrals",
		"Applications of Integration",
		"Differential Equations",
		"Sequences and Series",
		"Multivariable Calculus",
		"Vector Calculus",
	},
	"Programming": {
		"Variables and Data Types",
		"Control Structures",
		"Functions and Methods",
		"Object-Oriented Programming",
		"Data Structures",
		"Algorithms and Complexity",
		"File Input/Output",
		"Error Handling",
		"Testing and Debugging",
		"Software Design Patterns",
	},
	"Physics": {
		"Kinematics and Motion",
		"Forces and Newton's Laws",
		"Energy and Work",
		"Momentum and Collisions",
		"Rotational Motion",
		"Waves and Oscillations",
		"Thermodynamics",
		"Electricity and Magnetism",
		"Optics and Light",
		"Modern Physics",
	},
	"Chemistry": {
		"Atomic Structure",
		"Chemical Bonding",
		"Stoichiometry",
		"Chemical Reactions",
		"Acids and Bases",
		"Thermochemistry",
		"Chemical Equilibrium",
		"Electrochemistry",
		"Organic Chemistry Basics",
		"Laboratory Techniques",
	},
	"Statistics": {
		"Descriptive Statistics",
		"Probability Theory",
		"Random Variables",
		"Sampling Distributions",
		"Hypothesis Testing",
		"Confidence Intervals",
		"Correlation and Regression",
		"ANOVA and T-Tests",
		"Non-parametric Tests",
		"Experimental Design",
	},
}

// Topics returns the ordered topic list for a subject, or nil when the
// subject is not in the catalog.
func Topics(subject string) []string {
	return topics[subject]
}

// Prerequisites returns the topics that come before the given one in the
// subject's sequence. Topics are ordered easiest-first, so earlier entries
// double as prerequisites.
func Prerequisites(subject, topic string) []string {
	list := topics[subject]
	for i, t := range list {
		if t == topic {
			return list[:i]
		}
	}
	return nil
}

// NextSuggested returns the first topic in sequence the user has not
// completed, or review suggestions when everything is done.
func NextSuggested(subject string, completed map[string]bool) []string {
	for _, t := range topics[subject] {
		if !completed[t] {
			return []string{t}
		}
	}
	return []string{"Review all topics", "Explore advanced concepts"}
}

// Valid reports whether the subject exists and, when topic is non-empty,
// whether it belongs to the subject.
func Valid(subject, topic string) bool {
	list, ok := topics[subject]
	if !ok {
		return false
	}
	if topic == "" {
		return true
	}
	for _, t := range list {
		if t == topic {
			return true
		}
	}
	return false
}
