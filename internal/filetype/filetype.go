// Package filetype guesses a content type from a file name.
//
// The guess looks at the extension only; file contents are never read, so a
// text file with an unusual extension is classified by that extension.
package filetype

import (
	"mime"
	"path/filepath"
	"strings"
)

// Compression suffixes are peeled off before the type lookup, so
// "notes.txt.gz" is guessed as text/plain and "archive.gz" is unknown.
var encodings = map[string]string{
	".gz":  "gzip",
	".z":   "compress",
	".bz2": "bzip2",
	".xz":  "xz",
	".br":  "br",
}

var aliases = map[string]string{
	".svgz": ".svg.gz",
	".tgz":  ".tar.gz",
	".taz":  ".tar.gz",
	".tz":   ".tar.gz",
	".tbz2": ".tar.bz2",
	".txz":  ".tar.xz",
}

var types = map[string]string{}

func register(contentType string, exts ...string) {
	for _, ext := range exts {
		types[ext] = contentType
	}
}

func init() {
	register("application/javascript", ".js", ".mjs")
	register("application/json", ".json")
	register("application/manifest+json", ".webmanifest")
	register("application/msword", ".doc", ".dot", ".wiz")
	register("application/octet-stream", ".bin", ".a", ".dll", ".exe", ".o", ".obj", ".so")
	register("application/pdf", ".pdf")
	register("application/pkcs7-mime", ".p7c")
	register("application/postscript", ".ps", ".ai", ".eps")
	register("application/vnd.apple.mpegurl", ".m3u", ".m3u8")
	register("application/vnd.ms-excel", ".xls", ".xlb")
	register("application/vnd.ms-powerpoint", ".ppt", ".pot", ".ppa", ".pps", ".pwz")
	register("application/wasm", ".wasm")
	register("application/x-cpio", ".cpio")
	register("application/x-csh", ".csh")
	register("application/x-dvi", ".dvi")
	register("application/x-gtar", ".gtar")
	register("application/x-hdf5", ".h5")
	register("application/x-latex", ".latex")
	register("application/x-netcdf", ".cdf", ".nc")
	register("application/x-pkcs12", ".p12", ".pfx")
	register("application/x-python-code", ".pyc", ".pyo")
	register("application/x-sh", ".sh")
	register("application/x-shar", ".shar")
	register("application/x-shockwave-flash", ".swf")
	register("application/x-tar", ".tar")
	register("application/x-tcl", ".tcl")
	register("application/x-tex", ".tex")
	register("application/x-texinfo", ".texi", ".texinfo")
	register("application/x-troff", ".roff", ".t", ".tr")
	register("application/x-troff-man", ".man")
	register("application/xml", ".xsl", ".rdf", ".wsdl", ".xpdl")
	register("application/zip", ".zip")
	register("audio/3gpp", ".3gp")
	register("audio/aac", ".aac", ".adts", ".loas")
	register("audio/basic", ".au", ".snd")
	register("audio/mpeg", ".mp3", ".mp2")
	register("audio/opus", ".opus")
	register("audio/x-aiff", ".aif", ".aifc", ".aiff")
	register("audio/x-wav", ".wav")
	register("image/avif", ".avif")
	register("image/bmp", ".bmp")
	register("image/gif", ".gif")
	register("image/heic", ".heic")
	register("image/heif", ".heif")
	register("image/jpeg", ".jpg", ".jpe", ".jpeg")
	register("image/png", ".png")
	register("image/svg+xml", ".svg")
	register("image/tiff", ".tiff", ".tif")
	register("image/vnd.microsoft.icon", ".ico")
	register("image/webp", ".webp")
	register("image/x-portable-anymap", ".pnm")
	register("image/x-portable-bitmap", ".pbm")
	register("image/x-portable-graymap", ".pgm")
	register("image/x-portable-pixmap", ".ppm")
	register("image/x-xbitmap", ".xbm")
	register("image/x-xpixmap", ".xpm")
	register("message/rfc822", ".eml", ".mht", ".mhtml", ".nws")
	register("text/css", ".css")
	register("text/csv", ".csv")
	register("text/html", ".html", ".htm")
	register("text/markdown", ".md", ".markdown")
	register("text/plain", ".txt", ".bat", ".c", ".h", ".ksh", ".pl", ".srt")
	register("text/richtext", ".rtx")
	register("text/rtf", ".rtf")
	register("text/tab-separated-values", ".tsv")
	register("text/vtt", ".vtt")
	register("text/x-python", ".py")
	register("text/x-sgml", ".sgm", ".sgml")
	register("text/x-vcard", ".vcf")
	register("text/xml", ".xml")
	register("video/mp4", ".mp4")
	register("video/mpeg", ".mpeg", ".m1v", ".mpa", ".mpe", ".mpg")
	register("video/quicktime", ".mov", ".qt")
	register("video/webm", ".webm")
	register("video/x-msvideo", ".avi")
}

// Guess returns the content type for name, or "" when the extension is unknown.
func Guess(name string) string {
	base := strings.ToLower(filepath.Base(name))
	ext := filepath.Ext(base)

	if alias, ok := aliases[ext]; ok {
		base = strings.TrimSuffix(base, ext) + alias
		ext = filepath.Ext(base)
	}
	if _, ok := encodings[ext]; ok {
		base = strings.TrimSuffix(base, ext)
		ext = filepath.Ext(base)
	}
	// A leading dot marks a hidden file, not an extension.
	if ext == "" || ext == base {
		return ""
	}

	if t, ok := types[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		if mediaType, _, err := mime.ParseMediaType(t); err == nil {
			return mediaType
		}
		return t
	}
	return ""
}

// IsTextLike reports whether a guessed type may be opened as text. Unknown
// types are accepted.
func IsTextLike(contentType string) bool {
	return contentType == "" || strings.HasPrefix(contentType, "text/")
}
