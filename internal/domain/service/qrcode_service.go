package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateInstallQR generates a QR code pointing at the app install page
	GenerateInstallQR() ([]byte, error)
}
