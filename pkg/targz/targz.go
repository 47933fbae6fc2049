package targz

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type Visitor interface {
	VisitDirectory(info fs.FileInfo) error
	VisitFile(name string, info fs.FileInfo) (io.WriteCloser, error)
}

// Pack writes the given regular files into a gzipped tarball under their
// base names.
func Pack(output io.Writer, paths ...string) error {
	gzipWriter := gzip.NewWriter(output)
	tarWriter := tar.NewWriter(gzipWriter)

	for _, path := range paths {
		if err := packFile(tarWriter, path); err != nil {
			return err
		}
	}

	if err := tarWriter.Close(); err != nil {
		return err
	}
	return gzipWriter.Close()
}

func packFile(tarWriter *tar.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	header.Name = filepath.Base(path)

	if err := tarWriter.WriteHeader(header); err != nil {
		return err
	}
	_, err = io.Copy(tarWriter, file)
	return err
}

func Extract(input io.Reader, visitor Visitor) error {
	gzipReader, err := gzip.NewReader(input)
	if err != nil {
		return err
	}
	defer gzipReader.Close()

	tarReader := tar.NewReader(gzipReader)

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		info := header.FileInfo()
		if info.IsDir() {
			err = visitor.VisitDirectory(info)
			if err != nil {
				return err
			}
			continue
		}

		writer, err := visitor.VisitFile(header.Name, info)
		if err != nil {
			return err
		}

		if _, err := io.Copy(writer, tarReader); err != nil {
			writer.Close()
			return err
		}

		err = writer.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

type fsVisitor struct {
	root string
}

func (v *fsVisitor) resolve(name string) (string, error) {
	path := filepath.Join(v.root, filepath.Clean("/"+name))
	if !strings.HasPrefix(path, filepath.Clean(v.root)+string(filepath.Separator)) {
		return "", fmt.Errorf("entry %q escapes %s", name, v.root)
	}
	return path, nil
}

func (v *fsVisitor) VisitDirectory(info fs.FileInfo) error {
	path, err := v.resolve(info.Name())
	if err != nil {
		return err
	}
	return os.MkdirAll(path, 0755)
}

func (v *fsVisitor) VisitFile(name string, info fs.FileInfo) (io.WriteCloser, error) {
	path, err := v.resolve(name)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
}

func ExtractToDir(input io.Reader, path string) error {
	err := os.MkdirAll(path, 0755)
	if err != nil {
		return err
	}

	return Extract(input, &fsVisitor{root: path})
}
