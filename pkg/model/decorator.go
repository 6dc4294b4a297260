package model

// Decorator adjusts a form after it has been loaded and before it is rendered,
// e.g. to apply branding overrides from configuration.
type Decorator interface {
	Decorate(*Form) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Form) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *Form) error {
	return fn(form)
}

// Branding overrides the header and footer identity of a form. Empty fields
// leave the loaded values untouched.
type Branding struct {
	LogoURL  string `mapstructure:"logo_url"`
	LogoAlt  string `mapstructure:"logo_alt"`
	Title    string `mapstructure:"title"`
	Subtitle string `mapstructure:"subtitle"`
	Credit   string `mapstructure:"credit"`
}

// Empty reports whether no override is set.
func (b Branding) Empty() bool {
	return b == Branding{}
}

// Decorate applies the overrides.
func (b Branding) Decorate(form *Form) error {
	if form == nil {
		return nil
	}
	if b.LogoURL != "" {
		form.Header.LogoURL = b.LogoURL
	}
	if b.LogoAlt != "" {
		form.Header.LogoAlt = b.LogoAlt
	}
	if b.Title != "" {
		form.Header.Title = b.Title
	}
	if b.Subtitle != "" {
		form.Header.Subtitle = b.Subtitle
	}
	if b.Credit != "" {
		form.Footer.Credit = b.Credit
	}
	return nil
}
