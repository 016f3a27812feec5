// Copyright 2019 Michal Derkacz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svd decodes the parts of CMSIS-SVD device descriptions needed to
// build register layouts.
package svd

import (
	"encoding/xml"
	"io"
	"strconv"
)

type Uint uint

func (u *Uint) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	v, err := strconv.ParseUint(s, 0, 0)
	*u = Uint(v)
	return err
}

type Uint64 uint64

func (u *Uint64) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	v, err := strconv.ParseUint(s, 0, 64)
	*u = Uint64(v)
	return err
}

type Device struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
	Width       Uint   `xml:"width"`
	*RegisterPropertiesGroup
	Peripherals []*Peripheral `xml:"peripherals>peripheral"`
}

type RegisterPropertiesGroup struct {
	Size   *Uint   `xml:"size"`
	Access *string `xml:"access"`
}

type Peripheral struct {
	DerivedFrom *string `xml:"derivedFrom,attr"`
	Name        string  `xml:"name"`
	Description *string `xml:"description"`
	GroupName   *string `xml:"groupName"`
	BaseAddress Uint64  `xml:"baseAddress"`
	*RegisterPropertiesGroup
	Registers []*Register `xml:"registers>register"`
	Clusters  []*Cluster  `xml:"registers>cluster"`
}

type Register struct {
	DerivedFrom   *string `xml:"derivedFrom,attr"`
	Dim           Uint    `xml:"dim"`
	Name          string  `xml:"name"`
	Description   *string `xml:"description"`
	AddressOffset Uint64  `xml:"addressOffset"`
	*RegisterPropertiesGroup
	ModifiedWriteValues *string  `xml:"modifiedWriteValues"`
	Fields              []*Field `xml:"fields>field"`
}

type Field struct {
	DerivedFrom *string `xml:"derivedFrom,attr"`
	Name        string  `xml:"name"`
	Description *string `xml:"description"`
	*BitRangeOffsetWidth
	*BitRangeLSBMSB
	BitRangePattern     *string `xml:"bitRange"`
	Access              *string `xml:"access"`
	ModifiedWriteValues *string `xml:"modifiedWriteValues"`
}

type BitRangeOffsetWidth struct {
	BitOffset Uint  `xml:"bitOffset"`
	BitWidth  *Uint `xml:"bitWidth"`
}

type BitRangeLSBMSB struct {
	LSB Uint `xml:"lsb"`
	MSB Uint `xml:"msb"`
}

type Cluster struct {
	Name          string      `xml:"name"`
	AddressOffset Uint64      `xml:"addressOffset"`
	Registers     []*Register `xml:"register"`
	Clusters      []*Cluster  `xml:"cluster"`
}

// Decode reads an SVD device description.
func Decode(r io.Reader) (*Device, error) {
	dev := new(Device)
	if err := xml.NewDecoder(r).Decode(dev); err != nil {
		return nil, err
	}
	return dev, nil
}
