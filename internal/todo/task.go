// Package todo holds the task model, the fixed catalogs and the task list store.
package todo

// Color is an RGBA color with channels in [0,1].
type Color struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

type Category struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

// Task is compared by value; there is no edit, only add, move and delete.
type Task struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

var categories = []Category{
	{Name: "Design", Color: Color{Red: 1, Green: 0.231, Blue: 0.188, Alpha: 1}},
	{Name: "Programming", Color: Color{Red: 1, Green: 0.8, Blue: 0, Alpha: 1}},
	{Name: "Marketing", Color: Color{Red: 0.204, Green: 0.78, Blue: 0.349, Alpha: 1}},
	{Name: "Finance", Color: Color{Red: 0, Green: 0.78, Blue: 0.745, Alpha: 1}},
	{Name: "Support", Color: Color{Red: 0, Green: 0.478, Blue: 1, Alpha: 1}},
	{Name: "Sleep", Color: Color{Red: 0.686, Green: 0.322, Blue: 0.871, Alpha: 1}},
}

// Categories returns a copy of the fixed category catalog.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

func DefaultCategory() Category {
	return categories[0]
}

func CategoryByName(name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
