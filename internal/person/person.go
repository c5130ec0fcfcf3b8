package person

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/perhaps/pkg/rop"
	"github.com/ib-77/perhaps/pkg/rop/solo"
)

var (
	ErrNotAFile      = errors.New("is not a valid file")
	ErrInvalidYAML   = errors.New("invalid yaml")
	ErrInvalidPerson = errors.New("invalid person")
)

type Person struct {
	Name string
	Age  int
}

func (p Person) String() string {
	return fmt.Sprintf("Person{name: %s, age: %d}", p.Name, p.Age)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// EnsurePath succeeds with path when it names a regular file.
func EnsurePath(path string) rop.Result[string, error] {
	return solo.Predicate(isFile, ErrNotAFile)(path)
}

func ReadContent(path string) rop.Result[string, error] {
	return solo.Map(solo.AttemptWith(os.ReadFile, path), func(b []byte) string {
		return string(b)
	})
}

// ParseYAML decodes a YAML mapping. Anything else, including an empty
// document, fails with ErrInvalidYAML.
func ParseYAML(content string) rop.Result[map[string]any, error] {
	parsed := solo.Attempt(func() (map[string]any, error) {
		var data map[string]any
		if err := yaml.Unmarshal([]byte(content), &data); err != nil {
			return nil, err
		}
		if data == nil {
			return nil, errors.New("empty document")
		}
		return data, nil
	})

	return solo.MapError(parsed, func(err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	})
}

// LoadPerson builds a Person from the name and age keys of data.
func LoadPerson(data map[string]any) rop.Result[Person, error] {
	return solo.Attempt(func() (Person, error) {
		name, ok := data["name"].(string)
		if !ok || name == "" {
			return Person{}, fmt.Errorf("%w: name must be a non-empty string", ErrInvalidPerson)
		}

		age, ok := data["age"].(int)
		if !ok {
			return Person{}, fmt.Errorf("%w: age must be an integer", ErrInvalidPerson)
		}
		if age < 0 {
			return Person{}, fmt.Errorf("%w: age must not be negative", ErrInvalidPerson)
		}

		return Person{Name: name, Age: age}, nil
	})
}
