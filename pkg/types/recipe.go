package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Ingredient is one ingredient line of a recipe: a free-form quantity
// ("2 cups") and a name ("flour"). Order within a recipe is meaningful;
// duplicate names are allowed.
type Ingredient struct {
	Quantity string `json:"quantity"`
	Name     string `json:"name"`
}

// UnmarshalJSON accepts both serialized shapes of an ingredient: the
// mapping shape {"quantity": "2 cups", "name": "flour"} and the pair
// shape ["2 cups", "flour"]. Both decode to the same struct, so no
// other code ever branches on shape. Encoding always produces the
// mapping shape.
func (i *Ingredient) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var pair []string
		if err := json.Unmarshal(trimmed, &pair); err != nil {
			return fmt.Errorf("decoding ingredient pair: %w", err)
		}
		if len(pair) != 2 {
			return fmt.Errorf("ingredient pair must have 2 elements, got %d", len(pair))
		}
		i.Quantity = pair[0]
		i.Name = pair[1]
		return nil
	}

	// Alias avoids recursing into this method.
	type mapping Ingredient
	var m mapping
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return fmt.Errorf("decoding ingredient mapping: %w", err)
	}
	*i = Ingredient(m)
	return nil
}

// Recipe represents one cooking recipe.
type Recipe struct {
	RecipeID    int64        `json:"recipe_id"` // Assigned by storage on creation, immutable.
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Ingredients []Ingredient `json:"ingredients"` // Display order.
	Steps       []string     `json:"steps"`       // Display order, 1-based when rendered.
}

// Summary is the listing projection of a recipe: identity and headline
// fields only, never ingredients or steps.
type Summary struct {
	RecipeID    int64  `json:"recipe_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Render produces the human-readable multi-line form of the recipe:
// header fields, the ingredient list as "- {quantity} of {name}", and
// the numbered steps. Pure formatting; the caller decides where it goes.
func (r *Recipe) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recipe ID: %d\n", r.RecipeID)
	fmt.Fprintf(&b, "Name: %s\n", r.Name)
	fmt.Fprintf(&b, "Description: %s\n", r.Description)
	b.WriteString("\nIngredients:\n")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "- %s of %s\n", ing.Quantity, ing.Name)
	}
	b.WriteString("\nSteps:\n")
	for n, step := range r.Steps {
		fmt.Fprintf(&b, "%d. %s\n", n+1, step)
	}
	return b.String()
}
