package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Codec compresses a directory into an archive file and extracts one
// back out. It exists so the profile logic can be tested without real
// compression.
type Codec interface {
	// Compress writes an archive of srcDir to dstFile. The archive
	// contains a single top-level folder named after srcDir's base.
	// Top-level subdirectories listed in exclude are skipped. Symbolic
	// links are stored as links, never followed.
	Compress(srcDir, dstFile string, exclude []string) error

	// Extract unpacks an archive into dstDir, which must already exist.
	Extract(srcFile, dstDir string) error
}

// ZipCodec is the production Codec, built on archive/zip.
type ZipCodec struct{}

// Compress implements Codec.
func (ZipCodec) Compress(srcDir, dstFile string, exclude []string) error {
	out, err := os.Create(dstFile)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	base := filepath.Base(srcDir)

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		// Exclusions apply to top-level subdirectories only.
		if d.IsDir() && rel != "." && filepath.Dir(rel) == "." && slices.Contains(exclude, rel) {
			return fs.SkipDir
		}

		name := base
		if rel != "." {
			name = base + "/" + filepath.ToSlash(rel)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = name

		switch {
		case d.IsDir():
			header.Name += "/"
			_, err := zw.CreateHeader(header)
			return err
		case info.Mode()&fs.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			w, err := zw.CreateHeader(header)
			if err != nil {
				return err
			}
			_, err = w.Write([]byte(target))
			return err
		case info.Mode().IsRegular():
			header.Method = zip.Deflate
			w, err := zw.CreateHeader(header)
			if err != nil {
				return err
			}
			in, err := os.Open(path)
			if err != nil {
				return err
			}
			defer in.Close()
			_, err = io.Copy(w, in)
			return err
		default:
			// Sockets, pipes and devices have no place in an archive.
			return nil
		}
	})
	if err != nil {
		return err
	}

	if err := zw.Close(); err != nil {
		return err
	}
	return out.Close()
}

// Extract implements Codec.
func (ZipCodec) Extract(srcFile, dstDir string) error {
	zr, err := zip.OpenReader(srcFile)
	if err != nil {
		return err
	}
	defer zr.Close()

	for _, f := range zr.File {
		rel := filepath.FromSlash(strings.TrimSuffix(f.Name, "/"))
		if rel == "" || !filepath.IsLocal(rel) {
			return fmt.Errorf("archive entry %q escapes the extraction directory", f.Name)
		}
		target := filepath.Join(dstDir, rel)
		mode := f.Mode()

		switch {
		case f.FileInfo().IsDir():
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case mode&fs.ModeSymlink != 0:
			linkTarget, err := readAll(f)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			if err := os.Symlink(string(linkTarget), target); err != nil {
				return err
			}
		default:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			if err := extractFile(f, target, mode.Perm()); err != nil {
				return err
			}
		}
	}
	return nil
}

func extractFile(f *zip.File, target string, perm fs.FileMode) error {
	in, err := f.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func readAll(f *zip.File) ([]byte, error) {
	in, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return io.ReadAll(in)
}
