package core

// CategoryStyle describes how one catalog entry renders in the form, the
// expense list and the map legend.
type CategoryStyle struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Categories is the fixed, ordered catalog of permitted expense categories.
var Categories = []CategoryStyle{
	{Name: "Food & Dining", Icon: "🍔", Color: "#ff7675"},
	{Name: "Transportation", Icon: "🚗", Color: "#74b9ff"},
	{Name: "Education", Icon: "📚", Color: "#55efc4"},
	{Name: "Shopping", Icon: "🛍️", Color: "#fdcb6e"},
	{Name: "Entertainment", Icon: "🎬", Color: "#a29bfe"},
	{Name: "Other", Icon: "📎", Color: "#dfe6e9"},
}

// DefaultCategory is the catalog's first entry, preselected in the form.
func DefaultCategory() string {
	return Categories[0].Name
}

// StyleFor looks a category up by name. Unknown names keep their label but
// get the fallback icon and color.
func StyleFor(name string) CategoryStyle {
	for _, c := range Categories {
		if c.Name == name {
			return c
		}
	}
	return CategoryStyle{Name: name, Icon: "📎", Color: "#dfe6e9"}
}
