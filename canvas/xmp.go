// addressplate - generate address plate signage as vector PDF files
// Copyright (C) 2026  The addressplate authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package canvas

import (
	"golang.org/x/text/language"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/xmp"
)

// pdfSchema is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type pdfSchema struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Producer xmp.AgentName
}

var xDefault = language.MustParse("x-default")

// writeMetadata stores info as an XMP metadata stream and links it from
// the document catalog.
func writeMetadata(w *pdf.Writer, info *Info) error {
	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(xDefault, info.Title)
	}
	if info.Subject != "" {
		dc.Description.Set(xDefault, info.Subject)
	}
	meta := &pdfSchema{}
	if info.Producer != "" {
		meta.Producer = xmp.NewAgentName(info.Producer)
	}

	packet := xmp.NewPacket()
	packet.Set(dc, meta)

	ref := w.Alloc()
	stm, err := w.OpenStream(ref, pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	})
	if err != nil {
		return err
	}
	err = packet.Write(stm, &xmp.PacketOptions{})
	if err != nil {
		return err
	}
	err = stm.Close()
	if err != nil {
		return err
	}

	w.GetMeta().Catalog.Metadata = ref
	return nil
}
