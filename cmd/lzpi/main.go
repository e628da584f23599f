// Command lzpi compresses standard input to standard output, or decompresses
// it with -d or --decompress. On failure the exit code is the platform error
// number when one is available, EIO otherwise.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/woozymasta/lzpi"
)

func usage(name string) int {
	fmt.Fprintf(os.Stderr,
		"Usage:\t\t%s [-d | --decompress]\n\nExample:\t"+
			"tar -c archive | %s >archive.tar.lzpi\n\t\t"+
			"%s <archive.tar.lzpi | tar -x\n\t\t"+
			"%s -d <archive.tar.lzpi >archive.tar\n",
		name, name, name, name)

	return 1
}

// exitCode maps err to the process exit status: the platform error number
// when one is attached, the generic I/O error otherwise (truncated or
// malformed streams).
func exitCode(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}

	return int(syscall.EIO)
}

func run(name string) int {
	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)

	var err error
	switch {
	case len(os.Args) == 1:
		err = lzpi.Compress(out, in)
	case len(os.Args) == 2 && (os.Args[1] == "-d" || os.Args[1] == "--decompress"):
		err = lzpi.Decompress(out, in)
	default:
		return usage(name)
	}

	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return exitCode(err)
	}

	return 0
}

func main() {
	os.Exit(run(filepath.Base(os.Args[0])))
}
