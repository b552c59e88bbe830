package cmd

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/svgmin/svgmin"
)

// fileConfig mirrors an optional .svgmin.yaml, giving a project a way to
// pin non-default options without repeating flags on every invocation.
type fileConfig struct {
	Precision              *uint `yaml:"precision"`
	RemoveComments         *bool `yaml:"remove_comments"`
	RemoveMetadata         *bool `yaml:"remove_metadata"`
	RemoveXMLDeclaration   *bool `yaml:"remove_xml_declaration"`
	RemoveDoctype          *bool `yaml:"remove_doctype"`
	RemoveUnusedNamespaces *bool `yaml:"remove_unused_namespaces"`
	CollapseGroups         *bool `yaml:"collapse_groups"`
	RemoveHidden           *bool `yaml:"remove_hidden"`
	RemoveEmpty            *bool `yaml:"remove_empty"`
	MinifyColors           *bool `yaml:"minify_colors"`
	RemoveDefaults         *bool `yaml:"remove_defaults"`
	MinifyPaths            *bool `yaml:"minify_paths"`
	MinifyStyles           *bool `yaml:"minify_styles"`
	SortAttrs              *bool `yaml:"sort_attrs"`
}

// loadConfig reads path, if non-empty, and applies it on top of
// svgmin.DefaultOptions. A missing --config path that the user never asked
// for is not an error; an explicitly named path that cannot be read is.
func loadConfig(path string) (svgmin.Options, error) {
	opts := svgmin.DefaultOptions()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return opts, err
	}

	applyFileConfig(&opts, fc)
	return opts, nil
}

func applyFileConfig(opts *svgmin.Options, fc fileConfig) {
	if fc.Precision != nil {
		opts.Precision = *fc.Precision
	}
	if fc.RemoveComments != nil {
		opts.RemoveComments = *fc.RemoveComments
	}
	if fc.RemoveMetadata != nil {
		opts.RemoveMetadata = *fc.RemoveMetadata
	}
	if fc.RemoveXMLDeclaration != nil {
		opts.RemoveXMLDeclaration = *fc.RemoveXMLDeclaration
	}
	if fc.RemoveDoctype != nil {
		opts.RemoveDoctype = *fc.RemoveDoctype
	}
	if fc.RemoveUnusedNamespaces != nil {
		opts.RemoveUnusedNamespaces = *fc.RemoveUnusedNamespaces
	}
	if fc.CollapseGroups != nil {
		opts.CollapseGroups = *fc.CollapseGroups
	}
	if fc.RemoveHidden != nil {
		opts.RemoveHidden = *fc.RemoveHidden
	}
	if fc.RemoveEmpty != nil {
		opts.RemoveEmpty = *fc.RemoveEmpty
	}
	if fc.MinifyColors != nil {
		opts.MinifyColors = *fc.MinifyColors
	}
	if fc.RemoveDefaults != nil {
		opts.RemoveDefaults = *fc.RemoveDefaults
	}
	if fc.MinifyPaths != nil {
		opts.MinifyPaths = *fc.MinifyPaths
	}
	if fc.MinifyStyles != nil {
		opts.MinifyStyles = *fc.MinifyStyles
	}
	if fc.SortAttrs != nil {
		opts.SortAttrs = *fc.SortAttrs
	}
}
