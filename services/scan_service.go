package services

import (
	"time"

	"github.com/limpacelular/limpa-celular/api"
)

// MockScan fabrica o resultado simulado de varredura anexado a uma
// solicitação. Os grupos e tamanhos são fixos; nenhum dispositivo é
// inspecionado de verdade.
func MockScan() api.ScanResult {
	return api.ScanResult{
		GeneratedAt: time.Now().UTC(),
		Groups: []api.ScanGroup{
			{
				Theme: "WhatsApp",
				Items: []api.ScanItem{
					{ID: "wpp-photo-1", Type: "photo", SizeBytes: 2_400_000, Path: "WhatsApp/Media/WhatsApp Images/img1.jpg"},
					{ID: "wpp-video-1", Type: "video", SizeBytes: 18_500_000, Path: "WhatsApp/Media/WhatsApp Video/vid1.mp4"},
					{ID: "wpp-audio-1", Type: "audio", SizeBytes: 950_000, Path: "WhatsApp/Media/WhatsApp Audio/aud1.opus"},
					{ID: "wpp-doc-1", Type: "document", SizeBytes: 4_200_000, Path: "WhatsApp/Media/WhatsApp Documents/doc1.pdf"},
				},
			},
			{
				Theme: "Downloads",
				Items: []api.ScanItem{
					{ID: "dl-1", Type: "document", SizeBytes: 1_200_000, Path: "Download/arquivo.zip"},
				},
			},
		},
	}
}
