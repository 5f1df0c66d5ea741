package dto

// RegistrationInfo is returned by an unauthenticated probe of a device's
// registration endpoint.
type RegistrationInfo struct {
	IsRegistered bool `json:"is_registered"`
	AuthKeyLen   int  `json:"auth_key_len"`
}

type RegisterRequest struct {
	AuthKey string `json:"auth_key"`
}

type RegisterResponse struct {
	Error bool `json:"error"`
	Code  int  `json:"code"`
}

type ChipInfo struct {
	ChipID   string `json:"chip_id"`
	Model    int    `json:"chip_model"`
	Revision int    `json:"revision"`
}
