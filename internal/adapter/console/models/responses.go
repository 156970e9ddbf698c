package models

type AccountResponse struct {
	AccountNumber string `json:"accountNumber"`
	OwnerName     string `json:"ownerName"`
	Balance       string `json:"balance"`
}

type BalanceResponse struct {
	AccountNumber string `json:"accountNumber"`
	Balance       string `json:"balance"`
}

type TransferResponse struct {
	SourceAccountNumber      string `json:"sourceAccountNumber"`
	SourceBalance            string `json:"sourceBalance"`
	DestinationAccountNumber string `json:"destinationAccountNumber"`
	DestinationBalance       string `json:"destinationBalance"`
}
