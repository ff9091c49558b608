package domain

// FileType represents the allowed document types for analysis.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// ExportFormat names a downloadable report format.
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatCSV  ExportFormat = "csv"
)

// ValidExportFormats lists the formats the exporters understand.
var ValidExportFormats = map[ExportFormat]bool{
	ExportFormatJSON: true,
	ExportFormatPDF:  true,
	ExportFormatXLSX: true,
	ExportFormatCSV:  true,
}

// ClassifyMode selects how many classifier providers are consulted per upload.
type ClassifyMode string

const (
	ClassifyModeSingle ClassifyMode = "single"
	ClassifyModeDual   ClassifyMode = "dual"
)

// ValidClassifyModes lists the accepted classify modes.
var ValidClassifyModes = map[ClassifyMode]bool{
	ClassifyModeSingle: true,
	ClassifyModeDual:   true,
}
