package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RelayClient mengirim pesan lewat API gateway WhatsApp (fonnte.com).
type RelayClient struct {
	APIURL     string
	Token      string
	HTTPClient *http.Client
}

func NewRelayClient(token string) *RelayClient {
	return &RelayClient{
		APIURL: "https://api.fonnte.com/send",
		Token:  token,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (rc *RelayClient) Send(phone, message string) error {
	payload := map[string]string{
		"target":  phone,
		"message": message,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("gagal marshal JSON: %v", err)
	}

	req, err := http.NewRequest("POST", rc.APIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("gagal membuat request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", rc.Token)

	resp, err := rc.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("gagal mengirim request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API mengembalikan status: %d", resp.StatusCode)
	}

	return nil
}
