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
	"encoding/json"
	"math/big"
)

type jsonFile struct {
	Data struct {
		DomesticPayments []struct {
			InstructionIdentification string `json:"InstructionIdentification"`
			InstructedAmount          struct {
				Amount   string `json:"Amount"`
				Currency string `json:"Currency"`
			} `json:"InstructedAmount"`
		} `json:"DomesticPayments"`
	} `json:"Data"`
}

// jsonParser reads the UK.OBIE.PaymentInitiation.3.1 file format.
type jsonParser struct{}

func (p *jsonParser) Parse(content []byte) (*Summary, error) {
	var file jsonFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, malformed("invalid JSON: %v", err)
	}
	if file.Data.DomesticPayments == nil {
		return nil, malformed("Data.DomesticPayments is missing")
	}

	sum := new(big.Rat)
	for i, payment := range file.Data.DomesticPayments {
		amount, ok := ParseDecimal(payment.InstructedAmount.Amount)
		if !ok {
			return nil, malformed("payment %d has invalid amount %q", i, payment.InstructedAmount.Amount)
		}
		sum.Add(sum, amount)
	}

	return &Summary{
		NumberOfTransactions: len(file.Data.DomesticPayments),
		ControlSum:           sum,
	}, nil
}
