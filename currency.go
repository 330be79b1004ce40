package money

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Currency represents a currency known to the application: an identity,
// a [3-letter code], a rounding policy and localized labels.
//
// Currencies are matched by [Currency.ID] only. Two distinct Currency values
// with the same id denote the same currency, whatever their codes.
//
// Unlike [Money], Currency is mutable and not safe for concurrent writes.
// Treat a shared Currency as read-only after publishing it, or synchronize
// access externally.
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
type Currency struct {
	id        int64
	code      string
	mode      RoundingMode
	precision int
	titles    labels
	prefixes  labels
	postfixes labels
}

// NewCurrency returns a currency with the given id, code and rounding policy.
//
// NewCurrency returns an error wrapping [ErrInvalidArgument] if:
//   - the id is not positive;
//   - the code is not 3 uppercase letters;
//   - the rounding mode is not a declared [RoundingMode];
//   - the precision is negative.
func NewCurrency(id int64, code string, mode RoundingMode, precision int) (*Currency, error) {
	c := &Currency{}
	if err := c.SetID(id); err != nil {
		return nil, err
	}
	if err := c.SetCode(code); err != nil {
		return nil, err
	}
	if err := c.SetRoundingMode(mode); err != nil {
		return nil, err
	}
	if err := c.SetRoundingPrecision(precision); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewCurrency is like [NewCurrency] but panics if the currency cannot be constructed.
// It simplifies safe initialization of global variables holding currencies.
func MustNewCurrency(id int64, code string, mode RoundingMode, precision int) *Currency {
	c, err := NewCurrency(id, code, mode, precision)
	if err != nil {
		panic(fmt.Sprintf("NewCurrency(%v, %q, %v, %v) failed: %v", id, code, mode, precision, err))
	}
	return c
}

// ID returns the identity of the currency, unique across the application.
// The id of a nil currency is 0.
func (c *Currency) ID() int64 {
	if c == nil {
		return 0
	}
	return c.id
}

// SetID changes the identity of the currency.
// It returns an error if the id is not positive.
func (c *Currency) SetID(id int64) error {
	if err := validate.Var(id, "gt=0"); err != nil {
		return fmt.Errorf("%w: currency id %v must be positive", ErrInvalidArgument, id)
	}
	c.id = id
	return nil
}

// Code returns the 3-letter uppercase code of the currency.
func (c *Currency) Code() string {
	if c == nil {
		return ""
	}
	return c.code
}

// SetCode changes the code of the currency.
// It returns an error if the code is not 3 uppercase letters.
func (c *Currency) SetCode(code string) error {
	if err := validate.Var(code, "len=3,alpha,uppercase"); err != nil {
		return fmt.Errorf("%w: currency code %q: %v", ErrInvalidArgument, code, err)
	}
	c.code = code
	return nil
}

// RoundingMode returns the rounding mode used by [Money.RoundToCurr].
func (c *Currency) RoundingMode() RoundingMode {
	if c == nil {
		return RoundUnnecessary
	}
	return c.mode
}

// SetRoundingMode changes the rounding mode of the currency.
// It returns an error if the mode is not a declared [RoundingMode].
func (c *Currency) SetRoundingMode(mode RoundingMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: rounding mode %v", ErrInvalidArgument, mode)
	}
	c.mode = mode
	return nil
}

// RoundingPrecision returns the number of digits after the decimal point
// required for representing the minor unit of the currency.
// For example, the precision of the Euro is 2 and of the Japanese Yen is 0.
// See also method [Money.MinorAmount].
func (c *Currency) RoundingPrecision() int {
	if c == nil {
		return 0
	}
	return c.precision
}

// SetRoundingPrecision changes the rounding precision of the currency.
// It returns an error if the precision is negative.
func (c *Currency) SetRoundingPrecision(precision int) error {
	if err := validate.Var(precision, "gte=0"); err != nil {
		return fmt.Errorf("%w: rounding precision %v must not be negative", ErrInvalidArgument, precision)
	}
	c.precision = precision
	return nil
}

// Title returns the title of the currency in the given language.
// If locale is empty, the default title of the language is returned: the
// first one set for that language, with or without a locale.
// If locale is not empty, only a title set for exactly that locale is returned.
func (c *Currency) Title(lang, locale string) (Expression, bool) {
	return c.titles.get(lang, locale)
}

// SetTitle sets a title, replacing a previous one with the same language and locale.
func (c *Currency) SetTitle(title Expression) {
	c.titles.set(title)
}

// Titles returns all titles grouped by language.
func (c *Currency) Titles() []Expression {
	return c.titles.all()
}

// Prefix returns the symbol written before amounts in the given language.
// See [Currency.Title] for the lookup rules.
func (c *Currency) Prefix(lang, locale string) (Expression, bool) {
	return c.prefixes.get(lang, locale)
}

// SetPrefix sets a prefix symbol, replacing a previous one with the same
// language and locale.
func (c *Currency) SetPrefix(prefix Expression) {
	c.prefixes.set(prefix)
}

// Prefixes returns all prefix symbols grouped by language.
func (c *Currency) Prefixes() []Expression {
	return c.prefixes.all()
}

// Postfix returns the symbol written after amounts in the given language.
// See [Currency.Title] for the lookup rules.
func (c *Currency) Postfix(lang, locale string) (Expression, bool) {
	return c.postfixes.get(lang, locale)
}

// SetPostfix sets a postfix symbol, replacing a previous one with the same
// language and locale.
func (c *Currency) SetPostfix(postfix Expression) {
	c.postfixes.set(postfix)
}

// Postfixes returns all postfix symbols grouped by language.
func (c *Currency) Postfixes() []Expression {
	return c.postfixes.all()
}

// Clone returns a deep copy of the currency.
func (c *Currency) Clone() *Currency {
	if c == nil {
		return nil
	}
	return &Currency{
		id:        c.id,
		code:      c.code,
		mode:      c.mode,
		precision: c.precision,
		titles:    c.titles.clone(),
		prefixes:  c.prefixes.clone(),
		postfixes: c.postfixes.clone(),
	}
}

// SameCurr returns true if both currencies have the same id.
func (c *Currency) SameCurr(d *Currency) bool {
	return c.ID() == d.ID()
}

// String implements the [fmt.Stringer] interface and returns the code of the
// currency, or "XXX" for a nil currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c *Currency) String() string {
	if c == nil {
		return "XXX"
	}
	return c.code
}

// Expression is a piece of localized text: a value written in a language,
// optionally specific to a locale.
// Expression is immutable.
type Expression struct {
	value    string
	language string
	locale   string
}

// NewExpression returns an expression.
// The language is an [ISO 639-1] code such as "en" or "fa" and the locale an
// [ISO 3166-1 alpha-2] code such as "US" or "IR". An empty locale means the
// expression applies to the language as a whole.
//
// [ISO 639-1]: https://en.wikipedia.org/wiki/ISO_639-1
// [ISO 3166-1 alpha-2]: https://en.wikipedia.org/wiki/ISO_3166-1_alpha-2
func NewExpression(value, language, locale string) Expression {
	return Expression{value: value, language: language, locale: locale}
}

// Value returns the text.
func (e Expression) Value() string {
	return e.value
}

// Language returns the language code.
func (e Expression) Language() string {
	return e.language
}

// Locale returns the locale code, or an empty string.
func (e Expression) Locale() string {
	return e.locale
}

// String returns the text.
func (e Expression) String() string {
	return e.value
}

type labelKey struct {
	language string
	locale   string
}

// labels stores at most one expression per (language, locale) pair.
// The zero value is ready to use.
type labels struct {
	entries   map[labelKey]Expression
	languages []string            // in order of first use
	locales   map[string][]string // per language, in order of first use
}

func (l *labels) set(e Expression) {
	if l.entries == nil {
		l.entries = make(map[labelKey]Expression)
		l.locales = make(map[string][]string)
	}
	key := labelKey{language: e.language, locale: e.locale}
	if _, ok := l.entries[key]; !ok {
		if _, ok := l.locales[e.language]; !ok {
			l.languages = append(l.languages, e.language)
		}
		l.locales[e.language] = append(l.locales[e.language], e.locale)
	}
	l.entries[key] = e
}

func (l *labels) get(lang, locale string) (Expression, bool) {
	if locale != "" {
		e, ok := l.entries[labelKey{language: lang, locale: locale}]
		return e, ok
	}
	if locs := l.locales[lang]; len(locs) > 0 {
		return l.entries[labelKey{language: lang, locale: locs[0]}], true
	}
	return Expression{}, false
}

func (l *labels) all() []Expression {
	res := make([]Expression, 0, len(l.entries))
	for _, lang := range l.languages {
		for _, loc := range l.locales[lang] {
			res = append(res, l.entries[labelKey{language: lang, locale: loc}])
		}
	}
	return res
}

func (l *labels) clone() labels {
	if l.entries == nil {
		return labels{}
	}
	c := labels{
		entries:   make(map[labelKey]Expression, len(l.entries)),
		languages: append([]string(nil), l.languages...),
		locales:   make(map[string][]string, len(l.locales)),
	}
	for k, v := range l.entries {
		c.entries[k] = v
	}
	for k, v := range l.locales {
		c.locales[k] = append([]string(nil), v...)
	}
	return c
}
