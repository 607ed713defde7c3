package main

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"

	"github.com/templexxx/fastxor"
)

// applyFile XORs the content of srcPath into dstPath.
// dstPath is only rewritten if the XOR succeeded.
func applyFile(d *fastxor.Dispatcher, srcPath, dstPath string) error {
	src, err := ioutil.ReadFile(srcPath)
	if err != nil {
		return errors.Wrap(err, "read src")
	}
	dst, err := ioutil.ReadFile(dstPath)
	if err != nil {
		return errors.Wrap(err, "read dst")
	}
	if err = d.Xor(src, dst); err != nil {
		return errors.Wrapf(err, "%s ^ %s", srcPath, dstPath)
	}
	fi, err := os.Stat(dstPath)
	if err != nil {
		return errors.Wrap(err, "stat dst")
	}
	return errors.Wrap(ioutil.WriteFile(dstPath, dst, fi.Mode()), "write dst")
}
