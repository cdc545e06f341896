package config

// File represents the structure of the cbuild.yaml configuration file.
// Pointer fields distinguish an absent key from an explicit empty value.
type File struct {
	Root      *string  `yaml:"root"`
	Extension *string  `yaml:"extension"`
	Ignore    []string `yaml:"ignore"`
	Compiler  *string  `yaml:"compiler"`
	Flags     []string `yaml:"flags"`
	Binary    *string  `yaml:"binary"`
	State     *string  `yaml:"state"`
}
