package models

// Recipe is the structured payload of a recipe_post. It is serialized into
// Post.Payload and interpreted only by kind-aware renderers.
type Recipe struct {
	Name         string   `json:"name"`
	Difficulty   string   `json:"difficulty"`
	Photo        string   `json:"photo"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Servings     string   `json:"servings"`
	Time         string   `json:"time"`
}
