package debugex

const lineTerminator = "\r\n"
