package rotorfile

import (
	"time"
)

// defaultID identifies the table compiled into enigmacifra.
const defaultID = "5d0f2a8e-3b7c-4e51-9a6d-1c84f0b2e7a3"

var defaultCreated = time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

// defaultRotors is the built-in rotor table used when no rotor store exists.
// Replacing it makes everything encrypted with it undecipherable.
var defaultRotors = [][2]string{
	{
		"#vzj%pUcbR0\"P2`1-ZADXd6'9[fKN]GHgWV@^I.aF8k7ul_{B*Jq(tx5s/wYC$y=S4|}E:QiTe,n\\O3?;m>+r&Mo<h!L)",
		")L!h<oM&r+>m;?3O\\n,eTiQ:E}|4S=y$CYw/s5xt(qJ*B{_lu7k8Fa.I^@VWgHG]NKf[9'6dXDAZ-1`2P\"0RbcUp%jzv#",
	},
	{
		"g19Q{y:op5}0FPOJ6v)+_q[h#>4I;l`*nf]&tTekNW|Rb3S=X(c@$VjLxDu/U2r\\^Bw,AKszim?-8ZCd%!7aG'<MH.E\"Y",
		"Y\"E.HM<'Ga7!%dCZ8-?mizsKA,wB^\\r2U/uDxLjV$@c(X=S3bR|WNkeTt&]fn*`l;I4>#h[q_+)v6JOPF0}5po:y{Q91g",
	},
	{
		"gh^aEX5d\\m!*DzWV.')=-cBL2/tG]jMk_:xoqSHy1$0O4Nsie[uP;|,l%(U>{`<w&+bvIf@JpAYF\"#87?9rQnZRTK}63C",
		"C36}KTRZnQr9?78#\"FYApJ@fIvb+&w<`{>U(%l,|;Pu[eisN4O0$1yHSqox:_kMj]Gt/2LBc-=)'.VWzD*!m\\d5XEa^hg",
	},
	{
		"M+|[0B%pw:LD/Ca*?A$b1>9_^'zjX}ZeovIFR=l-8qGV`O4c(WS@uftE5U2Knm#k7]3irQPs!\".YN){d\\,Jygx&;THh6<",
		"<6hHT;&xgyJ,\\d{)NY.\"!sPQri3]7k#mnK2U5Etfu@SW(c4O`VGq8-l=RFIvoeZ}Xjz'^_9>1b$A?*aC/DL:wp%B0[|+M",
	},
	{
		"\\!=`N,gRi8[Y'G%ca?lh1j<HUBI(AF#T]>ME{6w:vD.uQ4$fe|syx0}XLWVC-qb2_mnJ/Z)@+&z9kSr*d\"KpPoO5;^73t",
		"t37^;5OoPpK\"d*rSk9z&+@)Z/Jnm_2bq-CVWLX}0xys|ef$4Qu.Dv:w6{EM>]T#FA(IBUH<j1hl?ac%G'Y[8iRg,N`=!\\",
	},
	{
		"aN6S[}/xK^q\\5,:sl$kDYR1|eh<?Qy;V2c.i4r=JX'n{p_!BF]Cvm@+>&PU9gLZH-u(j#`of3wtz0dWAM8\"IEO)G7bT%*",
		"*%Tb7G)OEI\"8MAWd0ztw3fo`#j(u-HZLg9UP&>+@mvC]FB!_p{n'XJ=r4i.c2V;yQ?<he|1RYDk$ls:,5\\q^Kx/}[S6Na",
	},
	{
		"sdr:IFb4=<8m*u'yVZz%K)g5}Ha(W2w|3ME{$@\\.!+h10TAcX,-`\"NlB[fSqj/n?>^];U7e_&GLt#C9okvOiPDRxp6QYJ",
		"JYQ6pxRDPiOvko9C#tLG&_e7U;]^>?n/jqSf[BlN\"`-,XcAT01h+!.\\@${EM3|w2W(aH}5g)K%zZVy'u*m8<=4bFI:rds",
	},
	{
		"S[W]'b<X?-{8Ujh;=x.KB%O+!&9_s#Z10\"AwEv\\a,kP7r@eYzy6DgInM:$NpHfmQ^GV5/q}3L)F>|42RT(ct*Cu`Jidlo",
		"oldiJ`uC*tc(TR24|>F)L3}q/5VG^QmfHpN$:MnIgD6yzYe@r7Pk,a\\vEwA\"01Z#s_9&!+O%BK.x=;hjU8{-?X<b']W[S",
	},
}
