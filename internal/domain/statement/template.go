package statement

// Geometric templates for the bank's statement layout. Each page class has
// two tables: the account-info header table and the transaction table. The
// primitives carry absolute page coordinates measured from the bank's
// current layout; if the bank changes its statement design these constants
// are the only thing that needs re-measuring, and until then a mismatched
// page simply yields an empty grid.

// PrimitiveKind distinguishes the two primitive shapes a template uses.
type PrimitiveKind int

const (
	KindLine PrimitiveKind = iota
	KindRect
)

// Primitive is one line or rectangle of a table template, in top-down page
// coordinates.
type Primitive struct {
	Kind           PrimitiveKind
	X1, Y1, X2, Y2 float64
}

func line(x1, y1, x2, y2 float64) Primitive {
	return Primitive{Kind: KindLine, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func rect(x1, y1, x2, y2 float64) Primitive {
	return Primitive{Kind: KindRect, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Template describes both tables of one page class.
type Template struct {
	TableOne []Primitive // account-info header table
	TableTwo []Primitive // transaction rows table
}

// templateFor selects the template by page number (1-based). Only the first
// page differs; every subsequent page shares one layout.
func templateFor(pageNum int) Template {
	if pageNum == 1 {
		return firstPage
	}
	return subsequentPage
}

var firstPage = Template{
	TableOne: []Primitive{
		rect(60.69945526123047, 428.2039489746094, 868.6990356445312, 496.1959533691406),
		line(212.370361328125, 426.8129577636719, 212.370361328125, 495.5869445800781),
		line(372.9596252441406, 426.1130065917969, 372.9596252441406, 495.8869934082031),
		line(584.129638671875, 429.2129821777344, 584.129638671875, 498.9869689941406),
		line(680.2296142578125, 428.5130310058594, 680.2296142578125, 498.2870178222656),
		line(59.73999786376953, 451.2002868652344, 871.498046875, 455.19964599609375),
	},
	TableTwo: []Primitive{
		rect(58.719913482666016, 571.8800048828125, 862.719482421875, 1460.8800048828125),
		line(146.62001037597656, 569.8489990234375, 147.61990356445312, 1460.6309814453125),
		line(225.010009765625, 570.489013671875, 226.00990295410156, 1461.27099609375),
		line(547.4600219726562, 569.0889892578125, 548.4599609375, 1459.8709716796875),
		line(646.0900268554688, 571.3289794921875, 647.0899658203125, 1462.1109619140625),
		line(761.1599731445312, 572.1290283203125, 762.159912109375, 1462.9110107421875),
		line(58.4630012512207, 603.1996459960938, 863.2449951171875, 604.1996459960938),
		line(58.4630012512207, 646.9996948242188, 863.2449951171875, 647.9996948242188),
		line(58.4630012512207, 690.7296752929688, 863.2449951171875, 691.7296752929688),
		line(59.72800064086914, 737.0197143554688, 864.510009765625, 738.0197143554688),
		line(58.4630012512207, 780.7896728515625, 863.2449951171875, 781.7896728515625),
		line(58.4630012512207, 827.3297119140625, 863.2449951171875, 828.3297119140625),
		line(58.4630012512207, 872.5897216796875, 863.2449951171875, 873.5897216796875),
		line(59.72800064086914, 917.8596801757812, 864.510009765625, 918.8596801757812),
		line(58.4630012512207, 964.2597045898438, 863.2449951171875, 965.2597045898438),
		line(59.72800064086914, 1005.8496704101562, 864.510009765625, 1006.8496704101562),
		line(59.72800064086914, 1051.23974609375, 864.510009765625, 1052.2396240234375),
		line(59.72800064086914, 1096.6297607421875, 864.510009765625, 1097.629638671875),
		line(59.72800064086914, 1139.48974609375, 864.510009765625, 1140.4896240234375),
		line(59.72800064086914, 1187.5897216796875, 864.510009765625, 1188.589599609375),
		line(58.4630012512207, 1231.8997802734375, 863.2449951171875, 1232.899658203125),
		line(58.4630012512207, 1319.19970703125, 863.2449951171875, 1320.1995849609375),
		line(58.4630012512207, 1368.559814453125, 863.2449951171875, 1369.5596923828125),
		line(59.72800064086914, 1409.0797119140625, 864.510009765625, 1410.07958984375),
	},
}

var subsequentPage = Template{
	TableOne: []Primitive{
		line(58.715999603271484, 222.49957275390625, 862.4979858398438, 222.49957275390625),
		line(365.1098937988281, 175.49002075195312, 364.1098937988281, 267.3100280761719),
		line(591.4498901367188, 176.78994750976562, 590.4498901367188, 268.6099548339844),
		line(685.0299072265625, 176.89004516601562, 684.0299072265625, 268.7100524902344),
		line(215.89988708496094, 175.58999633789062, 214.89990234375, 267.4100036621094),
		rect(58.16999816894531, 174.80038452148438, 859.1699829101562, 264.80023193359375),
	},
	TableTwo: []Primitive{
		line(224.25967407226562, 377.60699462890625, 226.26019287109375, 1478.373046875),
		line(553.0197143554688, 376.34698486328125, 555.0202026367188, 1477.113037109375),
		line(651.6497192382812, 377.25701904296875, 653.6502075195312, 1478.0230712890625),
		line(765.459716796875, 376.90704345703125, 767.460205078125, 1477.673095703125),
		line(57.45199966430664, 445.19952392578125, 861.2340087890625, 445.19952392578125),
		line(57.45199966430664, 491.19952392578125, 861.2340087890625, 491.19952392578125),
		line(56.1870002746582, 534.6995239257812, 859.968994140625, 534.6995239257812),
		line(57.45199966430664, 579.4995727539062, 861.2340087890625, 579.4995727539062),
		line(57.45199966430664, 622.9995727539062, 861.2340087890625, 622.9995727539062),
		line(57.45199966430664, 672.799560546875, 861.2340087890625, 672.799560546875),
		line(56.1870002746582, 715.5995483398438, 859.968994140625, 715.5995483398438),
		line(56.1870002746582, 758.3895874023438, 859.968994140625, 758.3895874023438),
		line(56.1870002746582, 802.4495849609375, 859.968994140625, 802.4495849609375),
		line(57.45199966430664, 1252.7095947265625, 861.2340087890625, 1252.7095947265625),
		line(57.45199966430664, 850.28955078125, 861.2340087890625, 850.28955078125),
		line(54.92300033569336, 894.3495483398438, 858.7050170898438, 894.3495483398438),
		line(56.1870002746582, 942.1995849609375, 859.968994140625, 942.1995849609375),
		line(57.45199966430664, 986.2495727539062, 861.2340087890625, 986.2495727539062),
		line(57.45199966430664, 1026.5096435546875, 861.2340087890625, 1026.5096435546875),
		line(56.1870002746582, 1071.629638671875, 859.968994140625, 1071.629638671875),
		line(56.1870002746582, 1123.2696533203125, 859.968994140625, 1123.2696533203125),
		line(57.45199966430664, 1167.11962890625, 861.2340087890625, 1167.11962890625),
		rect(57.13800048828125, 377.1295471191406, 860.1380004882812, 1478.129150390625),
		line(56.1870002746582, 1210.11962890625, 859.968994140625, 1210.11962890625),
		line(56.1870002746582, 1299.089599609375, 859.968994140625, 1299.089599609375),
		line(56.1870002746582, 1343.1396484375, 859.968994140625, 1343.1396484375),
		line(56.1870002746582, 1389.7296142578125, 859.968994140625, 1389.7296142578125),
		line(56.1870002746582, 1434.0196533203125, 859.968994140625, 1434.0196533203125),
		line(147.1196746826172, 378.36700439453125, 149.1201934814453, 1479.133056640625),
		line(56.1870002746582, 405.69952392578125, 859.968994140625, 405.69952392578125),
	},
}
