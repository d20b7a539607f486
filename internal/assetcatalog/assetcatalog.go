// Package assetcatalog models the Contents.json documents of an Xcode asset
// catalog: the container descriptor at the catalog root and one image set
// descriptor per converted file.
//
// Layout produced by svg2asset:
//
//	<Name>.xcassets/
//	  Contents.json
//	  <base>.imageset/
//	    Contents.json
//	    <base>.pdf
package assetcatalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Fixed names of the catalog format.
const (
	Extension       = ".xcassets"
	ItemSuffix      = "imageset"
	ConvertedSuffix = "pdf"
	SourceExtension = ".svg"
	ContentsFile    = "Contents.json"

	IdiomUniversal = "universal"
	RenderTemplate = "template"
	Author         = "xcode"
	FormatVersion  = 1
	indent         = "  "
	contentsPerm   = 0o644
)

// Info is the {version, author} block every Contents.json carries.
type Info struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

// DefaultInfo returns the info block written by Xcode itself.
func DefaultInfo() Info {
	return Info{Version: FormatVersion, Author: Author}
}

// Image is one entry of an image set.
type Image struct {
	Idiom    string `json:"idiom"`
	Filename string `json:"filename"`
}

// Properties holds optional image set properties.
type Properties struct {
	TemplateRenderingIntent string `json:"template-rendering-intent"`
}

// ImageSet is the Contents.json of a <base>.imageset directory.
// Properties is nil unless template rendering is requested, in which case
// the key is omitted from the encoded document entirely.
type ImageSet struct {
	Images     []Image     `json:"images"`
	Info       Info        `json:"info"`
	Properties *Properties `json:"properties,omitempty"`
}

// Container is the Contents.json at the catalog root.
type Container struct {
	Info Info `json:"info"`
}

// NewImageSet describes a single universal image. When template is true the
// image is marked for template (tintable) rendering.
func NewImageSet(filename string, template bool) ImageSet {
	set := ImageSet{
		Images: []Image{{Idiom: IdiomUniversal, Filename: filename}},
		Info:   DefaultInfo(),
	}
	if template {
		set.Properties = &Properties{TemplateRenderingIntent: RenderTemplate}
	}
	return set
}

// NewContainer returns the catalog root descriptor.
func NewContainer() Container {
	return Container{Info: DefaultInfo()}
}

// Encode renders v as indented JSON terminated by a newline.
func Encode(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// WriteContents encodes v into dir/Contents.json, replacing any existing file.
func WriteContents(dir string, v any) error {
	b, err := Encode(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", ContentsFile, err)
	}
	if err := os.WriteFile(filepath.Join(dir, ContentsFile), b, contentsPerm); err != nil {
		return fmt.Errorf("writing %s: %w", ContentsFile, err)
	}
	return nil
}

// WriteContainer writes the root Contents.json into an existing catalog dir.
func WriteContainer(catalog string) error {
	return WriteContents(catalog, NewContainer())
}

// HasExtension reports whether the final component of path names a catalog.
func HasExtension(path string) bool {
	return filepath.Ext(filepath.Clean(path)) == Extension
}

// BaseName returns the file name of path without its extension.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ItemDirName returns "<base>.imageset".
func ItemDirName(base string) string { return base + "." + ItemSuffix }

// ConvertedName returns "<base>.pdf".
func ConvertedName(base string) string { return base + "." + ConvertedSuffix }
