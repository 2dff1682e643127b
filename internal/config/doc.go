// Package config manages user-level defaults stored at
// ~/.neutrino/config.yaml (or $NEUTRINO_HOME/config.yaml). Defaults such as
// the author written into LICENSE files or the preferred C++ standard are
// read through Viper, so NEUTRINO_<KEY> environment variables override the
// file.
package config
