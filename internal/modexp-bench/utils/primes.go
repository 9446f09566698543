package utils

// Primes holds the benchmark moduli by bit width. Each run uses exactly one
// of them, selected through Config.Bits.
var Primes = map[int]string{
	64:   "13758676365741467507",
	128:  "284966011836017917039797442435648636163",
	256:  "79128031240076844063259589759962924441255910968111729611693920152825864722707",
	512:  "10711734159436774894171334484137626675507759979749407253125221261168087448899876831488509454695461974257751111853456275453329348448922191916590010377596767",
	1024: "158297696608074679654124946564912202999139663277505984894261981349837992769596165683700437968679604111373729258655046764462137227577322861762501627230418997487671809885760928375348392323002752945263359796693275288611323927303851169352900910708127230034239565388759941444235878668699843286794016470366892082267",
	2048: "22287360226908822233992819736392944434475043692265646916055930477587645696682024041890820611728835974780990571065838330253841354283867699159271588286101147370436450708147936416639540332373863814027801664774471436354150618315722661359913455362721373024713389259210331115681727749894367904502907551083219287819263090154675250911168607561882294815102877332366368477130120481174929478405004375083454233478408080520257325818925705871467706311605717341130286381719809389913520035118471758580658821155908577746981648167876884576360004782560776732442189914352788858257527373771629598261282997979720455015240977446412661775607",
}

// DefaultBits is the modulus width of the standard benchmark
const DefaultBits = 1024

// DefaultRounds is the number of timed trials of the standard benchmark
const DefaultRounds = 100
