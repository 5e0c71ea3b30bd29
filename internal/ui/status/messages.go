package status

import (
	"fmt"

	"excelsearch/internal/catalog"
	"excelsearch/internal/ui/state"
)

// Markers distinguishing outcomes that share the status line
const (
	SuccessMarker = "✓"
	ErrorMarker   = "✗"
)

// Kind classifies a status line for styling
type Kind int

const (
	KindNone Kind = iota
	KindProgress
	KindSuccess
	KindError
)

// Messages is a table of user-facing strings for one language
type Messages struct {
	Lang string

	Title           string
	ProductsCount   string // format: count
	SearchPrompt    string
	SearchHint      string
	Searching       string
	SearchFailed    string
	NoResultsTitle  string
	NoResultsHint   string // format: query
	ResultsHeader   string // format: total, query
	InvalidFileType string
	Uploading       string // format: file name
	UploadFailed    string
	Clearing        string
	ClearFailed     string
	ConfirmClear    string
	PickFile        string
	CatalogBusy     string
	HelpHint        string
	PriceLabel      string
	CodeLabel       string
	UploadedLabel   string

	// Key help
	HelpTitle   string
	KeySearch   string
	KeyResubmit string
	KeyReset    string
	KeyUpload   string
	KeyClear    string
	KeyNavigate string
	KeyHelp     string
	KeyQuit     string
}

var turkish = Messages{
	Lang:            "tr",
	Title:           "Excel Ürün Arama",
	ProductsCount:   "%d ürün",
	SearchPrompt:    "Ara: ",
	SearchHint:      "Aramak için / tuşuna, Excel yüklemek için u tuşuna basın",
	Searching:       "Aranıyor...",
	SearchFailed:    "Arama sırasında bir hata oluştu",
	NoResultsTitle:  "Sonuç bulunamadı",
	NoResultsHint:   "\"%s\" için eşleşen ürün yok. Farklı kelimeler deneyin.",
	ResultsHeader:   "%d sonuç: \"%s\"",
	InvalidFileType: "Lütfen sadece Excel dosyası (.xlsx, .xls) seçin",
	Uploading:       "%s yükleniyor...",
	UploadFailed:    "Dosya yüklenirken bir hata oluştu",
	Clearing:        "Katalog temizleniyor...",
	ClearFailed:     "Katalog temizlenemedi",
	ConfirmClear:    "Tüm ürünler silinsin mi? (e/h): ",
	PickFile:        "Excel dosyası seçin (Esc: vazgeç)",
	CatalogBusy:     "Devam eden bir yükleme var",
	HelpHint:        "Yardım için ? tuşuna basın",
	PriceLabel:      "Fiyat",
	CodeLabel:       "Kod",
	UploadedLabel:   "Yüklendi",

	HelpTitle:   "Kısayollar",
	KeySearch:   "ara",
	KeyResubmit: "tekrar ara",
	KeyReset:    "aramayı temizle",
	KeyUpload:   "excel yükle",
	KeyClear:    "kataloğu temizle",
	KeyNavigate: "sonuçlarda gezin",
	KeyHelp:     "yardım",
	KeyQuit:     "çıkış",
}

var english = Messages{
	Lang:            "en",
	Title:           "Excel Product Search",
	ProductsCount:   "%d products",
	SearchPrompt:    "Search: ",
	SearchHint:      "Press / to search, u to upload a spreadsheet",
	Searching:       "Searching...",
	SearchFailed:    "Something went wrong while searching",
	NoResultsTitle:  "No results",
	NoResultsHint:   "No products match \"%s\". Try different words.",
	ResultsHeader:   "%d results for \"%s\"",
	InvalidFileType: "Please choose an Excel file (.xlsx, .xls)",
	Uploading:       "Uploading %s...",
	UploadFailed:    "The file could not be uploaded",
	Clearing:        "Clearing catalog...",
	ClearFailed:     "The catalog could not be cleared",
	ConfirmClear:    "Delete all products? (y/n): ",
	PickFile:        "Choose an Excel file (Esc to cancel)",
	CatalogBusy:     "An upload is already running",
	HelpHint:        "Press ? for help",
	PriceLabel:      "Price",
	CodeLabel:       "Code",
	UploadedLabel:   "Uploaded",

	HelpTitle:   "Keys",
	KeySearch:   "search",
	KeyResubmit: "search again",
	KeyReset:    "clear search",
	KeyUpload:   "upload excel",
	KeyClear:    "clear catalog",
	KeyNavigate: "move through results",
	KeyHelp:     "help",
	KeyQuit:     "quit",
}

// For returns the message table for lang, defaulting to Turkish
func For(lang string) Messages {
	if lang == "en" {
		return english
	}
	return turkish
}

// Count renders the product count
func (m Messages) Count(n int) string {
	return fmt.Sprintf(m.ProductsCount, n)
}

// Ingest renders the single status slot of the catalog write flow
func (m Messages) Ingest(s *state.IngestState) (string, Kind) {
	switch s.Phase() {
	case state.IngestRejected:
		return fmt.Sprintf("%s %s", ErrorMarker, m.InvalidFileType), KindError
	case state.IngestUploading:
		return fmt.Sprintf(m.Uploading, s.FileName()), KindProgress
	case state.IngestSucceeded, state.IngestCleared:
		return fmt.Sprintf("%s %s", SuccessMarker, s.Message()), KindSuccess
	case state.IngestFailed:
		return fmt.Sprintf("%s %s", ErrorMarker, m.failure(s.Err(), s.Wipe())), KindError
	case state.IngestClearing:
		return m.Clearing, KindProgress
	default:
		return "", KindNone
	}
}

// failure prefers the backend's own explanation over the generic text
func (m Messages) failure(err error, wipe bool) string {
	if detail, ok := catalog.DetailOf(err); ok {
		return detail
	}
	if wipe {
		return m.ClearFailed
	}
	return m.UploadFailed
}

// SearchError renders the status for a failed search. Error subtypes are not
// distinguished for the user.
func (m Messages) SearchError(err error) string {
	return fmt.Sprintf("%s %s", ErrorMarker, m.SearchFailed)
}

// NoResults renders the explanation shown on the empty result card
func (m Messages) NoResults(query string) string {
	return fmt.Sprintf(m.NoResultsHint, query)
}

// Results renders the header above the result list
func (m Messages) Results(total int, query string) string {
	return fmt.Sprintf(m.ResultsHeader, total, query)
}
