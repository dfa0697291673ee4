// Package epcis exporta una conciliación como documento EPCIS 1.2 (XML) con un
// ObjectEvent por grupo: encontrados, leídos sin estar esperados y esperados no leídos.
package epcis

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/epc-inventory-api/internal/application/audit"
)

// Namespaces y vocabulario CBV usados en el documento.
const (
	NsEPCIS     = "urn:epcglobal:epcis:xsd:1"
	NsInventory = "urn:epc-inventory:audit:1"

	bizStepCycleCounting = "urn:epcglobal:cbv:bizstep:cycle_counting"
	dispSellable         = "urn:epcglobal:cbv:disp:sellable_accessible"
	dispUnknown          = "urn:epcglobal:cbv:disp:unknown"

	locationPrefix = "urn:epc-inventory:warehouse:"
)

// Valores de la extensión inv:reconciliation.
const (
	GroupFound          = "found"
	GroupUnknownInScan  = "unknownInScan"
	GroupUnknownInStage = "unknownInStage"
)

var _ audit.EPCISExporter = (*Exporter)(nil)

// Exporter implementa audit.EPCISExporter usando etree.
type Exporter struct{}

// NewExporter crea el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// Export genera el documento. Los grupos vacíos no producen evento.
func (e *Exporter) Export(r *audit.Report) ([]byte, error) {
	if r == nil || r.Audit == nil {
		return nil, fmt.Errorf("epcis: reporte sin auditoría")
	}
	at := r.GeneratedAt
	if at.IsZero() {
		at = time.Now()
	}
	at = at.UTC()

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("epcis:EPCISDocument")
	root.CreateAttr("xmlns:epcis", NsEPCIS)
	root.CreateAttr("xmlns:inv", NsInventory)
	root.CreateAttr("schemaVersion", "1.2")
	root.CreateAttr("creationDate", at.Format(time.RFC3339))

	events := root.CreateElement("EPCISBody").CreateElement("EventList")
	location := locationPrefix + r.Audit.WarehouseID
	groups := []struct {
		name        string
		epcs        []string
		disposition string
	}{
		{GroupFound, r.Result.Found, dispSellable},
		{GroupUnknownInScan, r.Result.UnknownInScan, dispUnknown},
		{GroupUnknownInStage, r.Result.UnknownInStage, dispUnknown},
	}
	for _, g := range groups {
		if len(g.epcs) == 0 {
			continue
		}
		ev := events.CreateElement("ObjectEvent")
		ev.CreateElement("eventTime").SetText(at.Format(time.RFC3339))
		ev.CreateElement("eventTimeZoneOffset").SetText("+00:00")
		list := ev.CreateElement("epcList")
		for _, epc := range g.epcs {
			list.CreateElement("epc").SetText(epc)
		}
		ev.CreateElement("action").SetText("OBSERVE")
		ev.CreateElement("bizStep").SetText(bizStepCycleCounting)
		ev.CreateElement("disposition").SetText(g.disposition)
		ev.CreateElement("readPoint").CreateElement("id").SetText(location)
		ev.CreateElement("bizLocation").CreateElement("id").SetText(location)
		ev.CreateElement("inv:auditId").SetText(r.Audit.UUID)
		ev.CreateElement("inv:reconciliation").SetText(g.name)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("epcis: serializar documento: %w", err)
	}
	return out, nil
}
