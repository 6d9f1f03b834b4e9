package mapper

import (
	"fmt"
	"strings"
	"time"

	"github.com/ashitosh07/lambda/internal/document"
	"github.com/ashitosh07/lambda/internal/failure"
)

// TransactionDateLayout is the source system's yyyyMMddHHmmss format.
const TransactionDateLayout = "20060102150405"

type Transaction struct {
	TransactionCode                string    `json:"TransactionCode"`
	ProductNumber                  string    `json:"ProductNumber"`
	TransactionDate                Timestamp `json:"TransactionDate"`
	DistributionOrReceptionChannel string    `json:"DistributionOrReceptionChannel"`
	BranchOffice                   string    `json:"BranchOffice"`
	City                           string    `json:"City"`
	Country                        string    `json:"Country"`
	OperationValue                 string    `json:"OperationValue"`
	Nature                         string    `json:"Nature"`
	CurrencyType                   string    `json:"CurrencyType"`
	TransactionType                string    `json:"TransactionType"`
	TransactionFee                 string    `json:"TransactionFee"`
	TerminalID                     string    `json:"TerminalId"`
	PartnerID                      string    `json:"PartnerId"`
	TransactionStatus              string    `json:"TransactionStatus"`
	SenderCurrency                 string    `json:"SenderCurrency"`
	SenderFees                     string    `json:"SenderFees"`
	DeliveryOption                 string    `json:"DeliveryOption"`
	ReceiverFirstName              string    `json:"ReceiverFirstName"`
	ReceiverLastName               string    `json:"ReceiverLastName"`
	ReceiveAmount                  string    `json:"ReceiveAmount"`
	ReceiveCurrency                string    `json:"ReceiveCurrency"`
	DeliveryCountry                string    `json:"DeliveryCountry"`
	CashValue                      Amount    `json:"CashValue"`
	CheckValue                     Amount    `json:"CheckValue"`
	ElectronicChannelValue         Amount    `json:"ElectronicChannelValue"`
}

func (t *Transaction) Family() Family { return FamilyTransaction }

func (t *Transaction) Attributes() []Attribute {
	return []Attribute{
		{"TransactionCode", t.TransactionCode},
		{"ProductNumber", t.ProductNumber},
		{"TransactionDate", t.TransactionDate.String()},
		{"DistributionOrReceptionChannel", t.DistributionOrReceptionChannel},
		{"BranchOffice", t.BranchOffice},
		{"City", t.City},
		{"Country", t.Country},
		{"OperationValue", t.OperationValue},
		{"Nature", t.Nature},
		{"CurrencyType", t.CurrencyType},
		{"TransactionType", t.TransactionType},
		{"TransactionFee", t.TransactionFee},
		{"TerminalId", t.TerminalID},
		{"PartnerId", t.PartnerID},
		{"TransactionStatus", t.TransactionStatus},
		{"SenderCurrency", t.SenderCurrency},
		{"SenderFees", t.SenderFees},
		{"DeliveryOption", t.DeliveryOption},
		{"ReceiverFirstName", t.ReceiverFirstName},
		{"ReceiverLastName", t.ReceiverLastName},
		{"ReceiveAmount", t.ReceiveAmount},
		{"ReceiveCurrency", t.ReceiveCurrency},
		{"DeliveryCountry", t.DeliveryCountry},
		{"CashValue", t.CashValue.String()},
		{"CheckValue", t.CheckValue.String()},
		{"ElectronicChannelValue", t.ElectronicChannelValue.String()},
	}
}

// TransactionMapper issues a fresh TransactionCode on every call, retries
// of the same input included.
type TransactionMapper struct {
	NewCode func() string
}

func (m *TransactionMapper) Map(doc document.Document) (Record, error) {
	if err := requireDocument(FamilyTransaction, doc); err != nil {
		return nil, err
	}

	// transactionDate has no safe default: the record fails without it.
	raw, ok := doc.Lookup("transactionDate").Text()
	if !ok {
		return nil, failure.Mapping("map transaction", fmt.Errorf("transactionDate is missing"))
	}
	date, err := time.Parse(TransactionDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return nil, failure.Mapping("map transaction", fmt.Errorf("failed to parse transactionDate: %w", err))
	}

	send := func(path ...string) document.Value {
		return doc.Lookup(append([]string{"details", "sendInfo"}, path...)...)
	}
	recv := func(path ...string) document.Value {
		return doc.Lookup(append([]string{"details", "receiveInfo"}, path...)...)
	}

	return &Transaction{
		TransactionCode:                m.NewCode(),
		ProductNumber:                  "21",
		TransactionDate:                Timestamp{Time: date},
		DistributionOrReceptionChannel: "ATM",
		BranchOffice:                   "Center",
		City:                           send("senderCity").TextOr(DefaultText),
		Country:                        send("senderCountry").TextOr(DefaultText),
		OperationValue:                 decimalText(send("sendAmounts", "totalAmountToCollect"), DefaultText),
		Nature:                         "1",
		CurrencyType:                   "Dollar",
		TransactionType:                doc.Lookup("transactionType").TextOr(DefaultText),
		TransactionFee:                 decimalText(send("sendAmounts", "totalSendFees"), DefaultText),
		TerminalID:                     doc.Lookup("machineId").TextOr(DefaultText),
		PartnerID:                      doc.Lookup("partnerId").TextOr(DefaultText),
		TransactionStatus:              doc.Lookup("transactionStatus").TextOr("SUCCESS"),
		SenderCurrency:                 send("sendAmounts", "sendCurrency").TextOr(DefaultText),
		SenderFees:                     decimalText(send("sendAmounts", "totalSendFees"), DefaultText),
		DeliveryOption:                 recv("deliveryOption").TextOr(DefaultText),
		ReceiverFirstName:              recv("receiverFirstName").TextOr(DefaultText),
		ReceiverLastName:               recv("receiverLastName").TextOr(DefaultText),
		ReceiveAmount:                  decimalText(recv("receiveAmounts", "receiveAmount"), DefaultText),
		ReceiveCurrency:                recv("receiveAmounts", "receiveCurrency").TextOr(DefaultText),
		DeliveryCountry:                recv("destinationCountry").TextOr(DefaultText),
	}, nil
}
