/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package fileparser

import (
	"bytes"
	"encoding/xml"
	"math/big"
	"strconv"
	"strings"
)

type painDocument struct {
	XMLName             xml.Name `xml:"Document"`
	CustomerCreditTrans struct {
		GroupHeader struct {
			MessageID            string `xml:"MsgId"`
			NumberOfTransactions string `xml:"NbOfTxs"`
			ControlSum           string `xml:"CtrlSum"`
		} `xml:"GrpHdr"`
		PaymentInformation []struct {
			Transactions []struct {
				Amount struct {
					Instructed struct {
						Value    string `xml:",chardata"`
						Currency string `xml:"Ccy,attr"`
					} `xml:"InstdAmt"`
				} `xml:"Amt"`
			} `xml:"CdtTrfTxInf"`
		} `xml:"PmtInf"`
	} `xml:"CstmrCdtTrfInitn"`
}

// painParser reads ISO 20022 pain.001.001.08 customer credit transfer files. Totals come from
// the group header; when the header omits them they are derived from the transactions.
type painParser struct{}

func (p *painParser) Parse(content []byte) (*Summary, error) {
	var doc painDocument
	decoder := xml.NewDecoder(bytes.NewReader(content))
	if err := decoder.Decode(&doc); err != nil {
		return nil, malformed("invalid XML: %v", err)
	}

	header := doc.CustomerCreditTrans.GroupHeader
	count, sum, err := p.transactionTotals(&doc)
	if err != nil {
		return nil, err
	}

	if n := strings.TrimSpace(header.NumberOfTransactions); n != "" {
		parsed, err := strconv.Atoi(n)
		if err != nil || parsed < 0 {
			return nil, malformed("GrpHdr/NbOfTxs %q is not a count", n)
		}
		count = parsed
	}
	if cs := strings.TrimSpace(header.ControlSum); cs != "" {
		parsed, ok := ParseDecimal(cs)
		if !ok {
			return nil, malformed("GrpHdr/CtrlSum %q is not a decimal", cs)
		}
		sum = parsed
	}

	return &Summary{NumberOfTransactions: count, ControlSum: sum}, nil
}

func (p *painParser) transactionTotals(doc *painDocument) (int, *big.Rat, error) {
	count := 0
	sum := new(big.Rat)
	for _, info := range doc.CustomerCreditTrans.PaymentInformation {
		for _, tx := range info.Transactions {
			value := strings.TrimSpace(tx.Amount.Instructed.Value)
			amount, ok := ParseDecimal(value)
			if !ok {
				return 0, nil, malformed("InstdAmt %q is not a decimal", value)
			}
			sum.Add(sum, amount)
			count++
		}
	}
	return count, sum, nil
}
