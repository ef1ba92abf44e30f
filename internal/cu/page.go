package cu

import (
	"fmt"
	"html/template"
	"os"
)

// pageItem is one token cell on the annotation page.
type pageItem struct {
	Code     string
	ImageURL string
	URLType  string
}

type pageData struct {
	Total       int
	Count26526  int
	Count26528  int
	Overlapping int
	Items       []pageItem
}

// GenerateMappingPage renders the manual-annotation HTML page: every token
// next to its source image with an input field. The completed page is scraped
// back into a JSON token table via the browser-console snippet it embeds.
func GenerateMappingPage(cs *CodeSet, outPath string) error {
	in26526 := toSet(cs.Char26526)
	in26528 := toSet(cs.Char26528)

	overlap := 0
	items := make([]pageItem, 0, len(cs.All))
	for _, code := range cs.All {
		_, a := in26526[code]
		_, b := in26528[code]
		item := pageItem{Code: code}
		switch {
		case a && b:
			// Present under both ids; 26526 is the primary image source.
			item.ImageURL = charImageURL("26526", code)
			item.URLType = "char/26526 (also in char/26528)"
			overlap++
		case a:
			item.ImageURL = charImageURL("26526", code)
			item.URLType = "char/26526"
		default:
			item.ImageURL = charImageURL("26528", code)
			item.URLType = "char/26528"
		}
		items = append(items, item)
	}

	data := pageData{
		Total:       len(cs.All),
		Count26526:  len(cs.Char26526),
		Count26528:  len(cs.Char26528),
		Overlapping: overlap,
		Items:       items,
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create mapping page: %w", err)
	}
	defer f.Close()
	if err := pageTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("render mapping page: %w", err)
	}
	return nil
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func charImageURL(id, code string) string {
	return "https://pravenc.ru/char/" + id + "/" + code + "/image.png"
}

var pageTemplate = template.Must(template.New("mapping").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Church Slavonic Character Code Mapping</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; background-color: #f5f5f5; }
        .container { max-width: 1200px; margin: 0 auto; background-color: white; padding: 20px; border-radius: 8px; }
        h1 { color: #333; text-align: center; margin-bottom: 30px; }
        .stats { background-color: #e8f4f8; padding: 15px; border-radius: 5px; margin-bottom: 30px; text-align: center; }
        .instructions { background-color: #fff3cd; border: 1px solid #ffeaa7; border-radius: 5px; padding: 15px; margin-bottom: 20px; }
        .character-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 20px; margin-top: 20px; }
        .character-item { border: 1px solid #ddd; border-radius: 8px; padding: 15px; background-color: #fafafa; text-align: center; }
        .url-type { font-size: 12px; color: #e67e22; font-weight: bold; margin-bottom: 5px; }
        .code { font-family: 'Courier New', monospace; font-size: 18px; font-weight: bold; color: #2c3e50; margin-bottom: 10px; background-color: #ecf0f1; padding: 8px; border-radius: 4px; }
        .image-container { margin: 10px 0; min-height: 60px; display: flex; align-items: center; justify-content: center; }
        .character-image { max-width: 100%; max-height: 80px; border: 1px solid #bdc3c7; border-radius: 4px; background-color: white; }
        .unicode-input { width: 100%; padding: 8px; margin-top: 10px; border: 1px solid #bdc3c7; border-radius: 4px; font-family: 'Courier New', monospace; font-size: 14px; }
        .url { font-family: 'Courier New', monospace; font-size: 10px; color: #7f8c8d; word-break: break-all; margin-top: 8px; }
        pre { background-color: #f8f9fa; padding: 10px; border-radius: 4px; overflow-x: auto; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Church Slavonic Character Code Mapping</h1>

        <div class="stats">
            <strong>Total Characters to Map:</strong> {{.Total}}<br>
            <strong>char/26526 characters:</strong> {{.Count26526}}<br>
            <strong>char/26528 characters:</strong> {{.Count26528}}<br>
            <strong>Overlapping characters:</strong> {{.Overlapping}}
        </div>

        <div class="instructions">
            <h3>Instructions for Manual Mapping:</h3>
            <ul>
                <li>Each character code is displayed with its source image.</li>
                <li>Enter the Unicode character it represents in the input field.</li>
                <li>Save this file after completing the mapping, then extract the table with the console snippet below.</li>
            </ul>
        </div>

        <div class="character-grid">
{{- range .Items}}
            <div class="character-item">
                <div class="url-type">{{.URLType}}</div>
                <div class="code">{{.Code}}</div>
                <div class="image-container">
                    <img src="{{.ImageURL}}" alt="Church Slavonic character {{.Code}}" class="character-image"
                         onerror="this.style.display='none'; this.nextElementSibling.style.display='block';">
                    <div style="display:none; color:#e74c3c; font-size:12px;">Image not found</div>
                </div>
                <input type="text" class="unicode-input" placeholder="Enter Unicode character (e.g., Ѣ)"
                       data-code="{{.Code}}" data-url="{{.ImageURL}}">
                <div class="url">{{.ImageURL}}</div>
            </div>
{{- end}}
        </div>

        <div style="margin-top: 40px; padding: 20px; background-color: #e8f5e8; border-radius: 5px;">
            <h3>Extracting the completed mapping</h3>
            <p>Run this in the browser console to produce the JSON token table:</p>
            <pre>
const mappings = {};
document.querySelectorAll('.unicode-input').forEach(input => {
    if (input.value.trim()) {
        mappings[input.dataset.code] = input.value.trim();
    }
});
console.log(JSON.stringify(mappings, null, 2));
            </pre>
        </div>
    </div>
</body>
</html>
`))
