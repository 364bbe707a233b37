// Package catalog ships a handful of sample definitions used by the CLI, the
// examples and the adapter golden tests.
package catalog

import (
	"sort"
	"strings"

	"github.com/goliatone/go-modelgen/pkg/model"
)

// User is a flat account record using the scalar field types.
func User() model.Definition {
	return model.New("User").
		Number("id").
		String("name").
		String("email").
		Number("age").
		Boolean("isActive").
		Date("createdAt").
		Build()
}

// Product exercises array and object fields.
func Product() model.Definition {
	return model.New("Product").
		Number("id").
		String("name").
		Number("price").
		String("description").
		Boolean("inStock").
		Array("tags").
		Object("metadata").
		Build()
}

// Order carries descriptions, required flags, defaults and constraints.
func Order() model.Definition {
	return model.New("Order").
		Describe("Represents a customer order with items and shipping information").
		Number("id", model.Required(), model.Description("Unique identifier for the order")).
		Number("customerId", model.Required(), model.Description("Reference to the customer who placed the order")).
		Date("orderDate", model.Required(), model.Description("Date when the order was placed")).
		String("status",
			model.Required(),
			model.Default("pending"),
			model.Description("Current status of the order"),
			model.Enum("pending", "processing", "shipped", "delivered", "cancelled"),
		).
		Array("items", model.Description("List of items in the order")).
		Object("shippingAddress", model.Required(), model.Description("Shipping address for the order")).
		Number("totalAmount", model.Required(), model.Description("Total amount of the order")).
		String("notes", model.Description("Additional notes for the order")).
		Build()
}

// BlogPost mixes required and defaulted fields.
func BlogPost() model.Definition {
	return model.New("BlogPost").
		Describe("Represents a blog post with author and comments").
		Number("id", model.Required(), model.Description("Unique identifier for the blog post")).
		String("title", model.Required(), model.Description("Title of the blog post")).
		String("content", model.Required(), model.Description("Content of the blog post")).
		Number("authorId", model.Required(), model.Description("Reference to the author of the blog post")).
		Date("publishDate", model.Description("Date when the blog post was published")).
		Array("tags", model.Description("Tags associated with the blog post")).
		Boolean("isPublished", model.Default(false), model.Description("Whether the blog post is published")).
		Number("viewCount", model.Default(0), model.Description("Number of views for the blog post")).
		Build()
}

var entries = map[string]func() model.Definition{
	"User":     User,
	"Product":  Product,
	"Order":    Order,
	"BlogPost": BlogPost,
}

// Names returns the catalog entry names sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every catalog definition ordered by name.
func All() []model.Definition {
	names := Names()
	out := make([]model.Definition, 0, len(names))
	for _, name := range names {
		out = append(out, entries[name]())
	}
	return out
}

// Lookup finds a definition by name, ignoring case.
func Lookup(name string) (model.Definition, bool) {
	name = strings.TrimSpace(name)
	if fn, ok := entries[name]; ok {
		return fn(), true
	}
	for key, fn := range entries {
		if strings.EqualFold(key, name) {
			return fn(), true
		}
	}
	return model.Definition{}, false
}
