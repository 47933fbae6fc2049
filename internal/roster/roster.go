package roster

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
)

type Student struct {
	Roll      int    `yaml:"roll"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

type Teacher struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Subject   string `yaml:"subject"`
}

type Roster struct {
	Subjects []string  `yaml:"subjects"`
	Students []Student `yaml:"students"`
	Teachers []Teacher `yaml:"teachers"`
}

func Parse(body []byte) (*Roster, error) {
	roster := &Roster{}
	if err := yaml.UnmarshalStrict(body, roster); err != nil {
		return nil, errors.Wrap(err, "Failed to unmarshal roster")
	}
	roster.normalize()
	return roster, nil
}

func Load(path string) (*Roster, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read roster")
	}
	return Parse(body)
}

func (r *Roster) normalize() {
	for i := range r.Subjects {
		r.Subjects[i] = strings.TrimSpace(r.Subjects[i])
	}
	for i := range r.Teachers {
		subject := strings.TrimSpace(r.Teachers[i].Subject)
		r.Teachers[i].Subject = subject
		if len(subject) > 0 && !slices.Contains(r.Subjects, subject) {
			r.Subjects = append(r.Subjects, subject)
		}
	}
}
