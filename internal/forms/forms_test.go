package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutFormValid(t *testing.T) {
	form := CheckoutForm{
		Nome:     "Ana Silva",
		Email:    "ana@loja.br",
		CEP:      "01310100",
		Numero:   "42",
		Endereco: "Avenida Paulista, Bela Vista, São Paulo - SP",
	}
	assert.True(t, form.Validate().Valid())
}

func TestCheckoutFormRequiredFields(t *testing.T) {
	errs := CheckoutForm{}.Validate()
	for _, field := range []string{"nome", "email", "cep", "numero", "endereco"} {
		assert.Contains(t, errs, field)
	}
}

func TestCheckoutFormEmailFormat(t *testing.T) {
	form := CheckoutForm{Nome: "Ana", Email: "pas-un-email", CEP: "01310100", Numero: "1", Endereco: "Rua X"}
	errs := form.Validate()
	assert.Equal(t, "Email invalide", errs["email"])
}

func TestCheckoutFormCEPMustBeEightDigits(t *testing.T) {
	for _, cep := range []string{"1234567", "123456789", "12345-678", "abcdefgh"} {
		form := CheckoutForm{Nome: "Ana", Email: "a@b.co", CEP: cep, Numero: "1", Endereco: "Rua X"}
		errs := form.Validate()
		assert.Equal(t, "Le CEP doit contenir 8 chiffres", errs["cep"], "cep %q", cep)
	}
}

func TestProductFormParsesNumbers(t *testing.T) {
	form := ProductForm{
		Name:        "Caneca",
		Description: "Caneca de cerâmica",
		Price:       "29.99",
		Stock:       "10",
	}
	input, errs := form.Parse()
	require.True(t, errs.Valid())
	assert.InDelta(t, 29.99, input.Price, 1e-9)
	assert.Equal(t, 10, input.Stock)
}

func TestProductFormRejectsNonNumericInput(t *testing.T) {
	// Jamais de NaN silencieux : l'entrée non numérique est une erreur de champ
	form := ProductForm{Name: "X", Description: "Y", Price: "abc", Stock: "dez"}
	_, errs := form.Parse()
	assert.Equal(t, "Le prix doit être un nombre", errs["price"])
	assert.Equal(t, "Le stock doit être un nombre entier", errs["stock"])
}

func TestProductFormRejectsNonFinitePrice(t *testing.T) {
	// strconv.ParseFloat accepte ces chaînes : elles doivent quand même
	// être des erreurs de champ, jamais un prix NaN ou infini
	for _, price := range []string{"NaN", "nan", "Inf", "inf", "Infinity", "+Inf", "-Inf"} {
		form := ProductForm{Name: "X", Description: "Y", Price: price}
		input, errs := form.Parse()
		assert.Equal(t, "Le prix doit être un nombre", errs["price"], "prix %q", price)
		assert.Zero(t, input.Price, "prix %q", price)
	}
}

func TestProductFormRejectsNegativePrice(t *testing.T) {
	form := ProductForm{Name: "X", Description: "Y", Price: "-5"}
	_, errs := form.Parse()
	assert.Equal(t, "Le prix ne peut pas être négatif", errs["price"])
}

func TestProductFormStockOptional(t *testing.T) {
	form := ProductForm{Name: "X", Description: "Y", Price: "10"}
	input, errs := form.Parse()
	require.True(t, errs.Valid())
	assert.Equal(t, 0, input.Stock)
}

func TestProductFormDefaultImage(t *testing.T) {
	form := ProductForm{Name: "X", Description: "Y", Price: "10", Image: "  "}
	input, errs := form.Parse()
	require.True(t, errs.Valid())
	assert.Equal(t, DefaultProductImage, input.Image)

	form.Image = "https://cdn.loja.br/caneca.jpg"
	input, _ = form.Parse()
	assert.Equal(t, "https://cdn.loja.br/caneca.jpg", input.Image)
}

func TestLoginFormValidation(t *testing.T) {
	assert.True(t, LoginForm{Email: "a@b.co", Password: "pw"}.Validate().Valid())

	errs := LoginForm{}.Validate()
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")

	errs = LoginForm{Email: "nope", Password: "pw"}.Validate()
	assert.Equal(t, "Email invalide", errs["email"])
}

func TestSignupFormValidation(t *testing.T) {
	assert.True(t, SignupForm{Name: "Ana", Email: "a@b.co", Password: "pw"}.Validate().Valid())

	errs := SignupForm{}.Validate()
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}
