package payments

import (
	"underwriting_service/internal/usecase/interfaces"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

type QREncoder struct {
	Size int
}

var _ interfaces.IQREncoder = QREncoder{}

func (e QREncoder) Encode(payload string) ([]byte, error) {
	size := e.Size
	if size <= 0 {
		size = defaultQRSize
	}
	return qrcode.Encode(payload, qrcode.Medium, size)
}
