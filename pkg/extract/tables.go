package extract

import (
	domain "github.com/ipartes/quote-service/pkg/types"
)

// knownManufacturers are brand tokens matched by substring against the
// upper-cased input. Order does not matter; the longest match wins.
var knownManufacturers = []string{
	"EMERSON", "ROTORK", "SIEMENS", "ABB", "SCHNEIDER", "HONEYWELL", "YOKOGAWA",
	"ENDRESS", "HAUSER", "ROSEMOUNT", "FISHER", "FOXBORO", "KROHNE", "VEGA",
	"OMEGA", "WIKA", "ALLEN-BRADLEY", "ROCKWELL", "GE", "MITSUBISHI", "OMRON",
	"PHOENIX", "FESTO", "SMC", "DANFOSS", "SHINING", "SHININGDDD", "EINSCAN",
}

// categoryDistributors is the static distributor directory keyed by coarse
// product category. Used when the completion gateway yields no usable
// emails. Entry order is significant: it is the priority order of the
// fallback candidate list.
var categoryDistributors = map[domain.Category][]domain.Distributor{
	domain.CategoryScanner: {
		{Name: "Shining 3D (Official)", Email: "sales@shining3d.com"},
		{Name: "GoMeasure3D", Email: "info@gomeasure3d.com"},
		{Name: "3DChimera", Email: "info@3dchimera.com"},
		{Name: "MatterHackers", Email: "sales@matterhackers.com"},
		{Name: "ScanSource 3D", Email: "info@scansource3d.com"},
		{Name: "Digitize Designs", Email: "info@digitizedesigns.com"},
		{Name: "3DGBIRE (UK)", Email: "info@3dgbire.com"},
		{Name: "3D Experts (Germany)", Email: "info@3d-experts.de"},
		{Name: "3D Lab (Poland)", Email: "info@3dlab.com.pl"},
		{Name: "3DVerkstan (Sweden)", Email: "info@3dverkstan.se"},
		{Name: "Creat3D (UK)", Email: "info@creat3d.co.uk"},
	},
	domain.CategoryFlow: {
		{Name: "Emerson Automation Solutions", Email: "FlowSupport@Emerson.com"},
		{Name: "Endress+Hauser", Email: "info@us.endress.com"},
		{Name: "KROHNE", Email: "info@krohne.com"},
		{Name: "Yokogawa", Email: "info@yokogawa.com"},
		{Name: "ABB Measurement", Email: "instrumentation@us.abb.com"},
		{Name: "Siemens Process Instrumentation", Email: "piabusales.industry@siemens.com"},
		{Name: "Honeywell Process Solutions", Email: "hfs-tac-support@honeywell.com"},
		{Name: "Omega Engineering", Email: "info@omega.com"},
		{Name: "Flowquip", Email: "sales@flowquip.co.uk"},
		{Name: "Process Instruments", Email: "sales@processinstrumentsolutions.co.uk"},
		{Name: "Sierra Instruments", Email: "sales@sierrainstruments.com"},
	},
	domain.CategorySensor: {
		{Name: "Omega Engineering", Email: "info@omega.com"},
		{Name: "Automation Direct", Email: "sales@automationdirect.com"},
		{Name: "Grainger", Email: "customerservice@grainger.com"},
		{Name: "RS Components", Email: "export@rs-components.com"},
		{Name: "Mouser Electronics", Email: "sales@mouser.com"},
		{Name: "Digi-Key", Email: "customerservice@digikey.com"},
		{Name: "Newark Electronics", Email: "sales@newark.com"},
		{Name: "Allied Electronics", Email: "sales@alliedelec.com"},
		{Name: "Instrumart", Email: "sales@instrumart.com"},
		{Name: "Kele", Email: "info@kele.com"},
		{Name: "Automation24", Email: "info@automation24.com"},
	},
	domain.CategoryValve: {
		{Name: "Rotork Controls", Email: "sales@rotork.com"},
		{Name: "Emerson Valve Automation", Email: "valveautomation@emerson.com"},
		{Name: "Flowserve", Email: "fcd@flowserve.com"},
		{Name: "ASCO Valve", Email: "info-valve@asco.com"},
		{Name: "Bürkert Fluid Control Systems", Email: "info@burkert.com"},
		{Name: "Festo", Email: "sales@festo.com"},
		{Name: "SMC Corporation", Email: "sales@smcusa.com"},
		{Name: "Parker Hannifin", Email: "c-parker@parker.com"},
		{Name: "Danfoss", Email: "customerservice@danfoss.com"},
		{Name: "Samson Controls", Email: "info@samsongroup.com"},
		{Name: "VAT Valves", Email: "sales@vatvalve.com"},
	},
	domain.CategoryGeneral: {
		{Name: "Grainger", Email: "customerservice@grainger.com"},
		{Name: "MSC Industrial", Email: "cust_service@mscdirect.com"},
		{Name: "Fastenal", Email: "sales@fastenal.com"},
		{Name: "McMaster-Carr", Email: "sales@mcmaster.com"},
		{Name: "Motion Industries", Email: "sales@motion-ind.com"},
		{Name: "Applied Industrial", Email: "customerservice@applied.com"},
		{Name: "RS Components", Email: "export@rs-components.com"},
		{Name: "Newark Electronics", Email: "sales@newark.com"},
		{Name: "Mouser Electronics", Email: "sales@mouser.com"},
		{Name: "Digi-Key", Email: "customerservice@digikey.com"},
		{Name: "Galco Industrial", Email: "sales@galco.com"},
	},
}

// manufacturerDistributors holds manufacturer-specific contacts, keyed by
// the exact-match keys recognized by manufacturerKey. These take priority
// over category contacts in the fallback list.
var manufacturerDistributors = map[string][]domain.Distributor{
	"EMERSON": {
		{Name: "Emerson Automation Solutions", Email: "FlowSupport@Emerson.com"},
		{Name: "Emerson Electric", Email: "customer.service@emerson.com"},
		{Name: "Emerson Process Management", Email: "info.regulators@emerson.com"},
		{Name: "Emerson Industrial Automation", Email: "industrial.sales@emerson.com"},
		{Name: "Emerson Climate Technologies", Email: "climate.sales@emerson.com"},
	},
	"ROTORK": {
		{Name: "Rotork Controls", Email: "sales@rotork.com"},
		{Name: "Rotork Instruments", Email: "instruments@rotork.com"},
		{Name: "Rotork Gears", Email: "gears@rotork.com"},
		{Name: "Rotork Fluid Systems", Email: "fluidsystems@rotork.com"},
		{Name: "Rotork Site Services", Email: "service@rotork.com"},
	},
	"SHINING": {
		{Name: "Shining 3D (Official)", Email: "sales@shining3d.com"},
		{Name: "Shining 3D Americas", Email: "sales.us@shining3d.com"},
		{Name: "Shining 3D EMEA", Email: "sales.eu@shining3d.com"},
		{Name: "Shining 3D APAC", Email: "sales.apac@shining3d.com"},
		{Name: "Shining 3D Technical Support", Email: "support@shining3d.com"},
	},
	"EINSCAN": {
		{Name: "Shining 3D (Official)", Email: "sales@shining3d.com"},
		{Name: "GoMeasure3D", Email: "info@gomeasure3d.com"},
		{Name: "3DChimera", Email: "info@3dchimera.com"},
		{Name: "MatterHackers", Email: "sales@matterhackers.com"},
		{Name: "ScanSource 3D", Email: "info@scansource3d.com"},
	},
}
