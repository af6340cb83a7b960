package locator

// Generic matching vocabularies per role. These cover the attribute and
// button-text conventions observed across public backlink tools; new tools
// with unusual markup get tool-specific hints instead of new branches.
var (
	urlInputVocab     = []string{"url", "link", "website", "domain", "site"}
	keywordInputVocab = []string{"keyword", "keywords", "tag", "tags", "anchor"}
	submitVocab       = []string{
		"submit", "check", "go", "search", "generate",
		"create", "make", "build", "start", "run",
	}
)

func vocabulary(role Role) []string {
	switch role {
	case RoleURLInput:
		return urlInputVocab
	case RoleKeywordInput:
		return keywordInputVocab
	case RoleSubmitControl:
		return submitVocab
	default:
		return nil
	}
}
