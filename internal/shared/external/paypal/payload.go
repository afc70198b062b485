package paypal

import "PayPalCheckout/internal/shared/domain/checkout"

const (
	intentCapture = "CAPTURE"
	currencyUSD   = "USD"
)

type tokenGrant struct {
	GrantType string `url:"grant_type"`
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type createOrderReq struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []purchaseUnit `json:"purchase_units"`
	Payer         payer          `json:"payer"`
}

type purchaseUnit struct {
	Amount      amount   `json:"amount"`
	Description string   `json:"description"`
	Shipping    shipping `json:"shipping"`
}

type amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type shipping struct {
	Name    shippingName `json:"name"`
	Address address      `json:"address"`
}

type shippingName struct {
	FullName string `json:"full_name"`
}

// Empty address and payer fields are left out rather than sent as "", which
// PayPal rejects for several of them.
type address struct {
	AddressLine1        string `json:"address_line_1,omitempty"`
	AddressLine2        string `json:"address_line_2,omitempty"`
	NeighborhoodQuarter string `json:"neighborhood_quarter,omitempty"`
	AdminArea2          string `json:"admin_area_2,omitempty"`
	AdminArea1          string `json:"admin_area_1,omitempty"`
	PostalCode          string `json:"postal_code,omitempty"`
	CountryCode         string `json:"country_code,omitempty"`
}

type payer struct {
	EmailAddress string    `json:"email_address,omitempty"`
	Name         payerName `json:"name"`
}

type payerName struct {
	GivenName string `json:"given_name,omitempty"`
	Surname   string `json:"surname,omitempty"`
}

type captureResp struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func newCreateOrderReq(req checkout.OrderRequest) createOrderReq {
	return createOrderReq{
		Intent: intentCapture,
		PurchaseUnits: []purchaseUnit{{
			Amount: amount{
				CurrencyCode: currencyUSD,
				Value:        string(req.ProductPrice),
			},
			Description: "Item Number: " + string(req.ItemNumber),
			Shipping: shipping{
				Name: shippingName{FullName: req.FirstName + " " + req.LastName},
				Address: address{
					AddressLine1:        req.Address1,
					AddressLine2:        req.Address2,
					NeighborhoodQuarter: req.Neighborhood,
					AdminArea2:          req.City,
					AdminArea1:          req.State,
					PostalCode:          string(req.Zip),
					CountryCode:         req.Country,
				},
			},
		}},
		Payer: payer{
			EmailAddress: req.Email,
			Name: payerName{
				GivenName: req.FirstName,
				Surname:   req.LastName,
			},
		},
	}
}
