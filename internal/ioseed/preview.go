package ioseed

import (
	"io"

	"github.com/gnames/puyadb/pkg/config"
	"github.com/gnames/puyadb/pkg/puyas"
	"gopkg.in/yaml.v3"
)

// preview is the YAML document written by a dry run.
type preview struct {
	Table   string         `yaml:"table"`
	Count   int            `yaml:"count"`
	Records []puyas.Record `yaml:"records"`
}

// Preview writes the records a seeding run would insert to w as YAML.
// It does not touch the database.
func Preview(w io.Writer, cfg *config.Config) error {
	gen, err := NewGenerator(cfg)
	if err != nil {
		return err
	}

	doc := preview{
		Table:   cfg.Seed.Table,
		Count:   cfg.Seed.Count,
		Records: gen.Records(cfg.Seed.Count),
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return PreviewError(err)
	}
	if err = enc.Close(); err != nil {
		return PreviewError(err)
	}
	return nil
}
