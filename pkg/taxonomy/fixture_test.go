package taxonomy_test

import (
	"strconv"

	"github.com/gnames/gntaxa/pkg/taxonomy"
)

type fixtureNode struct {
	id, parent int
	rank       string
}

var fixtureNodes = []fixtureNode{
	{1, 1, "no rank"},
	{131567, 1, "no rank"},
	{2759, 131567, "superkingdom"},
	{33154, 2759, "clade"},
	{33208, 33154, "kingdom"},
	{7711, 33208, "phylum"},
	{40674, 7711, "class"},
	{9443, 40674, "order"},
	{376913, 9443, "suborder"},
	{9604, 376913, "family"},
	{9477, 376913, "family"},
	{9592, 9604, "genus"},
	{9593, 9592, "species"},
	{9605, 9604, "genus"},
	{9606, 9605, "species"},
	{63221, 9606, "subspecies"},
	{741158, 9606, "subspecies"},
	{2, 131567, "superkingdom"},
	{1224, 2, "phylum"},
	{561, 1224, "genus"},
	{562, 561, "species"},
	{83333, 562, "strain"},
	{866768, 562, "strain"},
	{511145, 83333, "no rank"},
	{316407, 83333, "strain"},
	{1239, 2, "phylum"},
	{1386, 1239, "genus"},
	{2569093, 1386, "species"},
	{2157, 131567, "superkingdom"},
	{10239, 1, "superkingdom"},
	{11320, 10239, "species"},
	{119210, 11320, "serotype"},
	{114727, 11320, "serotype"},
	{387139, 119210, "no rank"},
	{387140, 119210, "no rank"},
	{28384, 1, "no rank"},
	{32630, 28384, "species"},
	{12908, 1, "no rank"},
	// parent 701 is not in the node table
	{700, 701, "species"},
}

type fixtureName struct {
	id          int
	name, class string
}

var fixtureNames = []fixtureName{
	{1, "root", "scientific name"},
	{131567, "cellular organisms", "scientific name"},
	{131567, "biota", "synonym"},
	{2759, "Eukaryota", "scientific name"},
	{2759, "eucaryotes", "genbank common name"},
	{2759, "eukaryotes", "common name"},
	{9604, "Hominidae", "scientific name"},
	{9604, "great apes", "genbank common name"},
	{9605, "Homo", "scientific name"},
	{9605, "Homo Linnaeus, 1758", "authority"},
	{9606, "Homo sapiens", "scientific name"},
	{9606, "human", "genbank common name"},
	{9606, "man", "common name"},
	{9606, "human", "common name"},
	{9606, "Homo sapiens Linnaeus, 1758", "authority"},
	{63221, "Homo sapiens neanderthalensis", "scientific name"},
	{63221, "Neandertal", "common name"},
	{741158, "Homo sapiens ssp. Denisova", "scientific name"},
	{9592, "Gorilla", "scientific name"},
	{9593, "Gorilla gorilla", "scientific name"},
	{9593, "western gorilla", "genbank common name"},
	{2, "Bacteria", "scientific name"},
	{2, "eubacteria", "genbank common name"},
	{562, "Escherichia coli", "scientific name"},
	{562, "'Bacterium coli'", "synonym"},
	{562, "E. coli", "acronym"},
	{10239, "Viruses", "scientific name"},
	{11320, "Influenza A virus", "scientific name"},
	{28384, "other entries", "scientific name"},
	{32630, "synthetic construct", "scientific name"},
	{12908, "unclassified entries", "scientific name"},
}

var fixtureMerged = [][2]int{
	{12345, 9606},
	{999999, 562},
}

func dumpRow(fields ...string) []string {
	var res []string
	for _, f := range fields {
		res = append(res, f, "|")
	}
	return res
}

func fixtureRaw() *taxonomy.RawRecords {
	res := &taxonomy.RawRecords{}
	for _, v := range fixtureNodes {
		res.Nodes = append(res.Nodes, dumpRow(
			strconv.Itoa(v.id), strconv.Itoa(v.parent), v.rank,
			"", "0", "1", "11", "1", "1", "1", "0", "0", "",
		))
	}
	for _, v := range fixtureNames {
		res.Names = append(res.Names, dumpRow(
			strconv.Itoa(v.id), v.name, "", v.class,
		))
	}
	for _, v := range fixtureMerged {
		res.Merged = append(res.Merged, dumpRow(
			strconv.Itoa(v[0]), strconv.Itoa(v[1]),
		))
	}
	return res
}

func fixtureGraph() *taxonomy.Graph {
	return taxonomy.New(taxonomy.Parse(fixtureRaw()))
}
