package constants

// Categories is the fixed set accepted on article create/update,
// in the order homepage previews are returned.
var Categories = []string{
	"news",
	"comeback",
	"fashion",
	"concert",
	"variety",
	"interview",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
