package api

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// TicketQR handles GET /api/ticket/{code}/qr.png. The PNG encodes the
// status-portal URL so scanning it opens the ticket's tracking page.
func (a *API) TicketQR(w http.ResponseWriter, r *http.Request) {
	ticket, ok := a.ticketFromURL(w, r)
	if !ok {
		return
	}

	url := "http://" + r.Host + "/status?ticket=" + ticket.Code
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
