// Package forms porte les formulaires typés du front : chaque page a son
// record explicite et une validation qui retourne les erreurs par champ,
// affichées en ligne avant toute soumission réseau.
package forms

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"loja_front_end/internal/api"
)

// FieldErrors : une erreur par champ, clé = nom du champ du formulaire
type FieldErrors map[string]string

func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

var (
	emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)
	cepPattern   = regexp.MustCompile(`^\d{8}$`)
)

// DefaultProductImage remplace un champ image laissé vide à la création
const DefaultProductImage = "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=400&h=400&fit=crop"

// CheckoutForm : données de livraison collectées à la fin du parcours
type CheckoutForm struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	CEP      string `json:"cep"`
	Numero   string `json:"numero"`
	Endereco string `json:"endereco"`
}

func (f CheckoutForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Nome) == "" {
		errs["nome"] = "Le nom est obligatoire"
	}
	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "L'email est obligatoire"
	} else if !emailPattern.MatchString(f.Email) {
		errs["email"] = "Email invalide"
	}
	if strings.TrimSpace(f.CEP) == "" {
		errs["cep"] = "Le CEP est obligatoire"
	} else if !cepPattern.MatchString(f.CEP) {
		errs["cep"] = "Le CEP doit contenir 8 chiffres"
	}
	if strings.TrimSpace(f.Numero) == "" {
		errs["numero"] = "Le numéro est obligatoire"
	}
	if strings.TrimSpace(f.Endereco) == "" {
		errs["endereco"] = "L'adresse est obligatoire"
	}
	return errs
}

// ProductForm : formulaire admin. Prix et stock arrivent en chaînes
// depuis le front et sont convertis explicitement — une entrée non
// numérique est rejetée avant soumission, jamais convertie en NaN.
type ProductForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Stock       string `json:"stock"`
}

// Parse valide le formulaire et retourne le payload prêt à envoyer.
// Le champ image vide reçoit l'image par défaut.
func (f ProductForm) Parse() (api.ProductInput, FieldErrors) {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Le nom est obligatoire"
	}
	if strings.TrimSpace(f.Description) == "" {
		errs["description"] = "La description est obligatoire"
	}

	var price float64
	if strings.TrimSpace(f.Price) == "" {
		errs["price"] = "Le prix est obligatoire"
	} else {
		p, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
		// ParseFloat accepte "NaN" et "Inf" : jamais de prix non fini
		if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
			errs["price"] = "Le prix doit être un nombre"
		} else if p < 0 {
			errs["price"] = "Le prix ne peut pas être négatif"
		} else {
			price = p
		}
	}

	var stock int
	if s := strings.TrimSpace(f.Stock); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			errs["stock"] = "Le stock doit être un nombre entier"
		} else if n < 0 {
			errs["stock"] = "Le stock ne peut pas être négatif"
		} else {
			stock = n
		}
	}

	if !errs.Valid() {
		return api.ProductInput{}, errs
	}

	image := strings.TrimSpace(f.Image)
	if image == "" {
		image = DefaultProductImage
	}

	return api.ProductInput{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Price:       price,
		Image:       image,
		Stock:       stock,
	}, errs
}

// LoginForm : identifiants transmis tels quels à l'API externe
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f LoginForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "L'email est obligatoire"
	} else if !emailPattern.MatchString(f.Email) {
		errs["email"] = "Email invalide"
	}
	if f.Password == "" {
		errs["password"] = "Le mot de passe est obligatoire"
	}
	return errs
}

// SignupForm : inscription, transmise telle quelle à l'API externe
type SignupForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f SignupForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Le nom est obligatoire"
	}
	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "L'email est obligatoire"
	} else if !emailPattern.MatchString(f.Email) {
		errs["email"] = "Email invalide"
	}
	if f.Password == "" {
		errs["password"] = "Le mot de passe est obligatoire"
	}
	return errs
}
