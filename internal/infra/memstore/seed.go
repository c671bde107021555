package memstore

import (
	"os"

	"issuance-engine/internal/pkg/errs"
	"issuance-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Customers []struct {
		ID    string `yaml:"id"`
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"customers"`
}

// LoadSeed reads customers from a YAML document of the form
//
//	customers:
//	  - id: 7f1c...
//	    name: Acme
//	    email: buyer@acme.test
func (s *Store) LoadSeed(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, errs.Wrap(err, "read seed file")
	}
	return s.loadSeed(raw)
}

func (s *Store) loadSeed(raw []byte) (int, error) {
	var doc seedFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return 0, errs.Wrap(err, "parse seed file")
	}
	for i, c := range doc.Customers {
		id, err := uuid.Parse(c.ID)
		if err != nil {
			return i, errs.Wrapf(err, "customer %d", i)
		}
		s.SeedCustomer(shared.CustomerSnapshot{ID: id, Name: c.Name, Email: c.Email})
	}
	return len(doc.Customers), nil
}
