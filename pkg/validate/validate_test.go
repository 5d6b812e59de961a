package validate_test

import (
	"testing"

	"github.com/newtonbotics/labstore/pkg/validate"
)

type productInput struct {
	Title    string  `json:"title"    validate:"required"`
	Slug     string  `json:"slug"     validate:"required,alpha_dash"`
	Category string  `json:"category" validate:"required,in=3d-printed,laser-engraved,electronics"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Homepage string  `json:"homepage" validate:"nullable,url"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(productInput{
		Title:    "Precision Servo Mount",
		Slug:     "precision-servo-mount",
		Category: "3d-printed",
		Price:    9.99,
		Homepage: "", // nullable — allowed to be empty
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["title"]; !ok {
		t.Error("expected title to be required")
	}
	if _, ok := errs["slug"]; !ok {
		t.Error("expected slug to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Quantity int     `json:"quantity" validate:"gte=1"`
		Price    float64 `json:"price"    validate:"gte=0"`
	}
	if errs := validate.Struct(in{Quantity: 0, Price: 1}); !validate.HasErrors(errs) {
		t.Error("expected quantity 0 to fail gte=1")
	}
	// Zero is a legitimate price under gte=0.
	if errs := validate.Struct(in{Quantity: 2, Price: 0}); validate.HasErrors(errs) {
		t.Errorf("expected price 0 to pass gte=0, got: %v", errs)
	}
	if errs := validate.Struct(in{Quantity: 1, Price: -0.01}); !validate.HasErrors(errs) {
		t.Error("expected negative price to fail gte=0")
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Category string `json:"category" validate:"required,in=3d-printed,laser-engraved,electronics"`
	}
	if errs := validate.Struct(in{Category: "furniture"}); !validate.HasErrors(errs) {
		t.Error("expected unknown category to fail")
	}
	if errs := validate.Struct(in{Category: "laser-engraved"}); validate.HasErrors(errs) {
		t.Errorf("expected known category to pass: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Website string `json:"website" validate:"nullable,url"`
	}
	// Empty string — nullable, should pass even though it's not a URL
	if errs := validate.Struct(in{Website: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	// Non-empty but invalid URL — should fail
	if errs := validate.Struct(in{Website: "not-a-url"}); !validate.HasErrors(errs) {
		t.Error("expected invalid URL to fail")
	}
}

func TestAlphaDashRule(t *testing.T) {
	type in struct {
		Slug string `json:"slug" validate:"required,alpha_dash"`
	}
	if errs := validate.Struct(in{Slug: "hello-world_123"}); validate.HasErrors(errs) {
		t.Errorf("expected alpha_dash to pass: %v", errs)
	}
	if errs := validate.Struct(in{Slug: "hello world!"}); !validate.HasErrors(errs) {
		t.Error("expected alpha_dash to fail for spaces/punctuation")
	}
}

func TestNestedStructPaths(t *testing.T) {
	type customer struct {
		FullName string `json:"full_name" validate:"required"`
		Email    string `json:"email"     validate:"required,email"`
	}
	type order struct {
		Customer customer `json:"customer"`
	}

	errs := validate.Struct(order{Customer: customer{FullName: "Ada", Email: "bad"}})
	if _, ok := errs["customer.email"]; !ok {
		t.Errorf("expected customer.email error, got: %v", errs)
	}
	if _, ok := errs["customer.full_name"]; ok {
		t.Error("did not expect customer.full_name error")
	}
}

func TestSliceElementPaths(t *testing.T) {
	type item struct {
		ProductID string `json:"product_id" validate:"required"`
		Quantity  int    `json:"quantity"   validate:"gte=1"`
	}
	type order struct {
		Items []item `json:"items"`
	}

	errs := validate.Struct(order{Items: []item{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "", Quantity: 0},
	}})
	if _, ok := errs["items.1.product_id"]; !ok {
		t.Errorf("expected items.1.product_id error, got: %v", errs)
	}
	if _, ok := errs["items.1.quantity"]; !ok {
		t.Errorf("expected items.1.quantity error, got: %v", errs)
	}
	if _, ok := errs["items.0.product_id"]; ok {
		t.Error("did not expect an error on the valid first item")
	}
}

func TestRequiredPointerAmounts(t *testing.T) {
	type in struct {
		Price *float64 `json:"price" validate:"required,gte=0"`
	}
	zero := 0.0
	negative := -0.5

	// Absent and supplied-as-zero are distinct for pointer fields.
	errs := validate.Struct(in{})
	if _, ok := errs["price"]; !ok {
		t.Errorf("expected nil price to fail required, got: %v", errs)
	}
	if errs := validate.Struct(in{Price: &zero}); validate.HasErrors(errs) {
		t.Errorf("expected supplied zero to pass, got: %v", errs)
	}
	if errs := validate.Struct(in{Price: &negative}); !validate.HasErrors(errs) {
		t.Error("expected negative price to fail gte=0")
	}
}

func TestStructPointerDescent(t *testing.T) {
	type specs struct {
		Datasheet string `json:"datasheet" validate:"nullable,url"`
	}
	type product struct {
		Title string `json:"title" validate:"required"`
		Specs *specs `json:"specs"`
	}

	// Nil pointer — nothing to descend into.
	if errs := validate.Struct(product{Title: "PDB"}); validate.HasErrors(errs) {
		t.Errorf("expected nil specs to pass: %v", errs)
	}

	errs := validate.Struct(product{Title: "PDB", Specs: &specs{Datasheet: "not-a-url"}})
	if _, ok := errs["specs.datasheet"]; !ok {
		t.Errorf("expected specs.datasheet error, got: %v", errs)
	}
}
