// Package content holds the site's page data: the city landing pages and the
// service catalogue, embedded as YAML.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidCity = errors.New("content: invalid city")
	ErrDuplicate   = errors.New("content: duplicate city slug")
)

//go:embed cities.yaml
var citiesYAML []byte

//go:embed services.yaml
var servicesYAML []byte

// ReservedSlugs are top-level paths a city page must not shadow.
var ReservedSlugs = []string{
	"about", "api", "contact", "health", "robots.txt", "services", "sitemap.xml", "static",
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// FAQ is one question on a city page.
type FAQ struct {
	Question string `yaml:"q"`
	Answer   string `yaml:"a"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
}

// City is a local landing page.
type City struct {
	Slug          string       `yaml:"slug"`
	City          string       `yaml:"city"`
	State         string       `yaml:"state"`
	Neighborhoods []string     `yaml:"neighborhoods"`
	Landmarks     []string     `yaml:"landmarks"`
	Intro         string       `yaml:"intro"`
	FAQs          []FAQ        `yaml:"faqs"`
	Testimonial   *Testimonial `yaml:"testimonial"`
}

// Service is one entry of the service catalogue.
type Service struct {
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Details []string `yaml:"details"`
}

// Content is the parsed site data.
type Content struct {
	Cities   []City
	Services []Service
}

// Load parses the embedded data.
func Load() (*Content, error) {
	return Parse(citiesYAML, servicesYAML)
}

// MustLoad is Load for package initialisation; it panics on bad data.
func MustLoad() *Content {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes city and service YAML documents and validates the cities.
func Parse(cities, services []byte) (*Content, error) {
	c := &Content{}
	if err := decodeStrict(cities, &c.Cities); err != nil {
		return nil, fmt.Errorf("content: cities: %w", err)
	}
	if err := decodeStrict(services, &c.Services); err != nil {
		return nil, fmt.Errorf("content: services: %w", err)
	}

	seen := make(map[string]bool, len(c.Cities))
	for _, city := range c.Cities {
		switch {
		case !slugPattern.MatchString(city.Slug):
			return nil, fmt.Errorf("%w: slug %q", ErrInvalidCity, city.Slug)
		case slices.Contains(ReservedSlugs, city.Slug):
			return nil, fmt.Errorf("%w: slug %q is reserved", ErrInvalidCity, city.Slug)
		case city.City == "" || city.State == "":
			return nil, fmt.Errorf("%w: %s needs city and state", ErrInvalidCity, city.Slug)
		case seen[city.Slug]:
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, city.Slug)
		}
		seen[city.Slug] = true
	}
	return c, nil
}

func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// City looks a city up by slug.
func (c *Content) City(slug string) (City, bool) {
	i := slices.IndexFunc(c.Cities, func(city City) bool { return city.Slug == slug })
	if i < 0 {
		return City{}, false
	}
	return c.Cities[i], true
}
