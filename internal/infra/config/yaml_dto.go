package config

// YAMLPalette is the on-disk shape of a palette override file:
//
//	palette:
//	  wall: "#000000"
//	  checkpoint: "#0000ff"
//
// Roles left out keep their default color.
type YAMLPalette struct {
	Palette map[string]string `yaml:"palette"`
}
