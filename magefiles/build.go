//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Checks the GLSL sources with glslangValidator, if it is installed.
func (Build) Shaders() error {
	return validateShaders()
}

// Tidies the module and builds the orbit binary into bin/.
func (Build) Binary() error {
	if err := tidy(); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("build", "-o", filepath.Join("bin", "orbit"), "."), withStream()); err != nil {
		return err
	}
	return nil
}
