package decision

import "ai4juris-backend/models"

// defaultCanonMap is the built-in curated mapping from normalized variants
// to the 14 canonical classes, distilled from frequency analysis of the DGSI
// corpus. The deployed artifact (a CSV regenerated offline by the
// rank-decisions tooling) supersedes this table when configured.
var defaultCanonMap = CanonMap{
	// IMPROCEDENTE
	"IMPROCEDENTE":                  models.ClassImprocedente,
	"JULGADA IMPROCEDENTE":          models.ClassImprocedente,
	"JULGADO IMPROCEDENTE":          models.ClassImprocedente,
	"JULGO IMPROCEDENTE":            models.ClassImprocedente,
	"TOTALMENTE IMPROCEDENTE":       models.ClassImprocedente,
	"IMPROCEDENTE A ACÇÃO":          models.ClassImprocedente,
	"ACÇÃO IMPROCEDENTE":            models.ClassImprocedente,
	"RECURSO IMPROCEDENTE":          models.ClassImprocedente,
	"JULGAR IMPROCEDENTE O RECURSO": models.ClassImprocedente,
	"IMPROCEDENTE O RECURSO":        models.ClassImprocedente,
	"IMPROCEDENTE A APELAÇÃO":       models.ClassImprocedente,
	"IMPROCEDENTE A REVISTA":        models.ClassImprocedente,
	"IMPROCEDÊNCIA":                 models.ClassImprocedente,

	// PROCEDENTE
	"PROCEDENTE":            models.ClassProcedente,
	"JULGADA PROCEDENTE":    models.ClassProcedente,
	"JULGADO PROCEDENTE":    models.ClassProcedente,
	"JULGO PROCEDENTE":      models.ClassProcedente,
	"TOTALMENTE PROCEDENTE": models.ClassProcedente,
	"ACÇÃO PROCEDENTE":      models.ClassProcedente,
	"PROCEDENTE O RECURSO":  models.ClassProcedente,
	"PROCEDENTE A APELAÇÃO": models.ClassProcedente,
	"PROCEDENTE A REVISTA":  models.ClassProcedente,
	"PROCEDÊNCIA":           models.ClassProcedente,

	// PROVIDO
	"PROVIDO":                         models.ClassProvido,
	"RECURSO PROVIDO":                 models.ClassProvido,
	"PROVIDO O RECURSO":               models.ClassProvido,
	"CONCEDIDO PROVIMENTO":            models.ClassProvido,
	"CONCEDIDO PROVIMENTO AO RECURSO": models.ClassProvido,
	"DADO PROVIMENTO":                 models.ClassProvido,
	"PROVIMENTO":                      models.ClassProvido,

	// CONFIRMADA
	"CONFIRMADA":                     models.ClassConfirmada,
	"CONFIRMADA A DECISÃO":           models.ClassConfirmada,
	"CONFIRMADA A DECISÃO RECORRIDA": models.ClassConfirmada,
	"CONFIRMADA A SENTENÇA":          models.ClassConfirmada,
	"CONFIRMADO":                     models.ClassConfirmada,
	"CONFIRMADO O ACÓRDÃO":           models.ClassConfirmada,
	"CONFIRMADO O ACÓRDÃO RECORRIDO": models.ClassConfirmada,

	// REVOGADA
	"REVOGADA":            models.ClassRevogada,
	"REVOGADA A DECISÃO":  models.ClassRevogada,
	"REVOGADA A SENTENÇA": models.ClassRevogada,
	"SENTENÇA REVOGADA":   models.ClassRevogada,
	"REVOGADO":            models.ClassRevogada,
	"REVOGADO O DESPACHO": models.ClassRevogada,
	"DECISÃO REVOGADA":    models.ClassRevogada,

	// ANULADA
	"ANULADA":              models.ClassAnulada,
	"ANULADA A DECISÃO":    models.ClassAnulada,
	"ANULADA A SENTENÇA":   models.ClassAnulada,
	"ANULADO":              models.ClassAnulada,
	"ANULADO O ACÓRDÃO":    models.ClassAnulada,
	"ANULADO O JULGAMENTO": models.ClassAnulada,

	// NULIDADE
	"NULIDADE":             models.ClassNulidade,
	"DECLARADA A NULIDADE": models.ClassNulidade,
	"NULIDADE PROCESSUAL":  models.ClassNulidade,
	"NULIDADE DA SENTENÇA": models.ClassNulidade,
	"NULO":                 models.ClassNulidade,
	"DECLARADO NULO":       models.ClassNulidade,

	// CONCEDIDA
	"CONCEDIDA":               models.ClassConcedida,
	"CONCEDIDA A REVISTA":     models.ClassConcedida,
	"CONCEDIDA A PROVIDÊNCIA": models.ClassConcedida,
	"CONCEDIDO":               models.ClassConcedida,
	"PROVIDÊNCIA CONCEDIDA":   models.ClassConcedida,

	// NEGADA
	"NEGADA":                       models.ClassNegada,
	"NEGADA A REVISTA":             models.ClassNegada,
	"NEGADO":                       models.ClassNegada,
	"NEGADO PROVIMENTO":            models.ClassNegada,
	"NEGADO PROVIMENTO AO RECURSO": models.ClassNegada,
	"PROVIMENTO NEGADO":            models.ClassNegada,
	"NEGADA A APELAÇÃO":            models.ClassNegada,

	// RESOLVIDO
	"RESOLVIDO":            models.ClassResolvido,
	"CONFLITO RESOLVIDO":   models.ClassResolvido,
	"RESOLVIDO O CONFLITO": models.ClassResolvido,

	// REENVIO
	"REENVIO":             models.ClassReenvio,
	"REENVIO DO PROCESSO": models.ClassReenvio,
	"ORDENADO O REENVIO":  models.ClassReenvio,
	"REENVIO PREJUDICIAL": models.ClassReenvio,

	// INUTILIDADE
	"INUTILIDADE":                       models.ClassInutilidade,
	"INUTILIDADE SUPERVENIENTE":         models.ClassInutilidade,
	"INUTILIDADE SUPERVENIENTE DA LIDE": models.ClassInutilidade,
	"EXTINÇÃO POR INUTILIDADE":          models.ClassInutilidade,

	// DECRETADA
	"DECRETADA":               models.ClassDecretada,
	"DECRETADA A PROVIDÊNCIA": models.ClassDecretada,
	"DECRETADO":               models.ClassDecretada,

	// ALTERADA
	"ALTERADA":                    models.ClassAlterada,
	"ALTERADA A DECISÃO":          models.ClassAlterada,
	"DECISÃO ALTERADA":            models.ClassAlterada,
	"ALTERADA A MATÉRIA DE FACTO": models.ClassAlterada,
}

// DefaultCanonMap returns a copy of the built-in mapping so callers can
// never mutate the package table.
func DefaultCanonMap() CanonMap {
	m := make(CanonMap, len(defaultCanonMap))
	for k, v := range defaultCanonMap {
		m[k] = v
	}
	return m
}
