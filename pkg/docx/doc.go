// Package docx builds Microsoft Word documents (DOCX) from a typed element
// model and packs them into the Office Open XML container.
//
// # Quick Start
//
//	doc := docx.New().
//	    AddParagraph(xml.NewParagraph().
//	        Align(xml.AlignCenter).
//	        AddRun(xml.NewRun().Bold().AddText("Quarterly Report"))).
//	    Footer(xml.NewFooter().
//	        AddFieldCode(xml.PageNum().Wrap("none").XAlign("center")))
//
//	if err := doc.Save("report.docx"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The package is organized into sub-packages:
//
//   - xmlbuilder: the markup builder every element renders through
//   - xml: the element model (Document, Paragraph, Run, Table, Header, Footer, FieldCode)
//
// The main package provides:
//   - Container assembly (New, Build, Package, Pack, Save)
//   - Configuration (Config, ConfigFromEnvironment, LoadConfigFile)
//   - Logging through logrus (GetLogger, WithField, WithFields)
//   - Error handling (DocxError)
//
// # Configuration
//
// The global configuration is read from the environment on start:
//
//	DOCXGEN_LOG_LEVEL   debug, info, warn or error (default info)
//	DOCXGEN_COMPRESS    deflate the container parts (default true)
//
// # Errors
//
// Rendering XML cannot fail. Build misuse of the markup builder is a
// programming error and panics. Packing and saving return *DocxError:
//
//	err := doc.Save(path)
//	if docx.IsDestinationError(err) {
//	    // the file could not be created or written
//	}
package docx
