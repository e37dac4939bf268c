// Package config is the bootstrap layer: it reads the environment once and
// turns it into the values the rest of the program is built from, chiefly the
// location of the config document (~/.conf.json). Nothing outside this
// package looks at $HOME.
package config
